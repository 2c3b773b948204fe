package models

import (
	"errors"
	"fmt"
	"time"
)

// Role is the trust level assigned to a user account. It is a closed
// enumeration: only the three declared constants are valid, and every
// construction path must go through [ParseRole] so that an unknown value
// is rejected before it reaches persistence or the policy engine.
type Role string

const (
	// RoleAdmin can manage user accounts and read astronaut records.
	RoleAdmin Role = "Admin"

	// RoleAstronaut is the data subject: the only role that submits
	// health records, always for itself.
	RoleAstronaut Role = "Astronaut"

	// RoleMedic reviews astronaut records but owns none of its own.
	RoleMedic Role = "Medic"
)

// ErrUnknownRole is returned by ParseRole when the input does not match any
// of the three declared roles.
var ErrUnknownRole = errors.New("unknown user role")

// ParseRole validates s against the closed role set and returns the typed
// value. Any other string yields ErrUnknownRole.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleAstronaut, RoleMedic:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// Valid reports whether r is one of the three declared roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) String() string {
	return string(r)
}

// User represents an account entity used for authentication, authorization
// and encryption-key ownership. Sensitive fields (password hash, encryption
// key) must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique, case-sensitive identifier used for lookups,
	// token subjects and message addressing.
	Email string `json:"email"`

	// FirstName and LastName form the display name.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Role is the trust level of the account. Always one of the three
	// declared constants once the user has been persisted.
	Role Role `json:"role"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// Key is the base64url-encoded Fernet key generated once at account
	// creation. Every record owned by the user and every message addressed
	// to the user is sealed under this key. Never exposed via JSON.
	Key string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial account update. Nil fields are left
// untouched; non-nil fields overwrite the stored value.
type UserUpdate struct {
	Email        *string
	FirstName    *string
	LastName     *string
	Role         *Role
	PasswordHash *string
}

// Empty reports whether the update carries no changes at all.
func (u UserUpdate) Empty() bool {
	return u.Email == nil && u.FirstName == nil && u.LastName == nil &&
		u.Role == nil && u.PasswordHash == nil
}
