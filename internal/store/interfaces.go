package store

import (
	"context"

	"github.com/GeorgesCH/SSDTeamProject/models"
)

// UserRepository provides persistence for user accounts, including the
// per-user encryption key column and the atomic cascade delete.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered under email, or
	// ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// GetAllUsers returns every registered account.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// GetUsersByRole returns every account holding the given role.
	GetUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)

	// UpdateUser applies a partial update and returns the stored account
	// after the change.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)

	// DeleteUserCascade removes the account together with every record it
	// owns and every message it authored or is named recipient of, in a
	// single transaction. A crash mid-cascade leaves no partial state.
	DeleteUserCascade(ctx context.Context, user models.User) error
}

// RecordRepository provides persistence for encrypted health records.
type RecordRepository interface {
	// CreateRecord persists an encrypted entry and returns it with
	// server-assigned fields populated.
	CreateRecord(ctx context.Context, record models.Record) (models.Record, error)

	// GetRecordsByOwner returns all records of a kind owned by the user,
	// newest first.
	GetRecordsByOwner(ctx context.Context, ownerID int64, kind models.RecordKind) ([]models.Record, error)
}

// MessageRepository provides persistence for encrypted private messages.
type MessageRepository interface {
	// CreateMessage persists an encrypted message and returns it with
	// server-assigned fields populated.
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)

	// GetMessagesForUser returns every message the user authored or is the
	// named recipient of, newest first, with author emails populated.
	GetMessagesForUser(ctx context.Context, user models.User) ([]models.Message, error)

	// GetConversation returns the messages exchanged between user and the
	// identified counterpart, newest first, with author emails populated.
	GetConversation(ctx context.Context, user models.User, other models.User) ([]models.Message, error)
}
