// Package policy implements the role- and ownership-based authorization
// matrix. Authorize is a pure function over the closed role enumeration: it
// keeps no state, performs no I/O, and is safe to call concurrently.
//
// Unknown role values never reach this engine; they are rejected when an
// account is created or updated.
package policy

import (
	"fmt"

	"github.com/GeorgesCH/SSDTeamProject/models"
)

// Action enumerates every operation the policy engine can gate.
type Action int

const (
	// ActionViewRecords reads the health records of the target user.
	ActionViewRecords Action = iota

	// ActionSubmitRecord creates a new health record for the target user.
	ActionSubmitRecord

	// ActionReadMessages lists conversations the actor takes part in.
	ActionReadMessages

	// ActionSendMessage sends a private message.
	ActionSendMessage

	// ActionListUsers lists every registered account.
	ActionListUsers

	// ActionViewUser reads a single account's details.
	ActionViewUser

	// ActionCreateUser registers a new account.
	ActionCreateUser

	// ActionUpdateUser modifies an existing account.
	ActionUpdateUser

	// ActionDeleteUser removes an account and cascades over its data.
	ActionDeleteUser

	// ActionListAstronauts lists all accounts with the Astronaut role.
	ActionListAstronauts

	// ActionListMedics lists all accounts with the Medic role.
	ActionListMedics
)

// Authorize decides whether actor may perform action against target.
// target may be nil for actions that have no target identity (listings,
// sending messages). It returns nil to allow, or an error wrapping
// ErrRoleDenied with the reason.
//
// Self-targeted deletion is checked before any role rule: an identity may
// always delete itself, whatever its role.
func Authorize(actor models.User, action Action, target *models.User) error {
	if action == ActionDeleteUser && isSelf(actor, target) {
		return nil
	}

	switch action {
	case ActionViewRecords:
		if isSelf(actor, target) {
			return nil
		}
		if target != nil && target.Role == models.RoleAstronaut &&
			(actor.Role == models.RoleAdmin || actor.Role == models.RoleMedic) {
			return nil
		}
		return deny("records of another user are visible to Admin or Medic only, and only for astronauts")

	case ActionSubmitRecord:
		if actor.Role != models.RoleAstronaut {
			return deny("only astronauts submit health records")
		}
		if target != nil && !isSelf(actor, target) {
			return deny("astronauts submit records for themselves only")
		}
		return nil

	case ActionReadMessages, ActionSendMessage:
		// Any identity may take part in messaging; conversation scoping
		// (author or named recipient) is enforced by the store queries.
		return nil

	case ActionListUsers, ActionViewUser, ActionCreateUser, ActionUpdateUser, ActionDeleteUser:
		if actor.Role != models.RoleAdmin {
			return deny("account management requires the Admin role")
		}
		return nil

	case ActionListAstronauts:
		if actor.Role == models.RoleAdmin || actor.Role == models.RoleMedic {
			return nil
		}
		return deny("astronaut listing requires the Admin or Medic role")

	case ActionListMedics:
		if actor.Role == models.RoleAdmin || actor.Role == models.RoleAstronaut {
			return nil
		}
		return deny("medic listing requires the Admin or Astronaut role")

	default:
		return deny(fmt.Sprintf("unknown action %d", action))
	}
}

func isSelf(actor models.User, target *models.User) bool {
	return target != nil && actor.UserID == target.UserID
}

func deny(reason string) error {
	return fmt.Errorf("%w: %s", ErrRoleDenied, reason)
}
