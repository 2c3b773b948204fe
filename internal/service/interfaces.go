package service

import (
	"context"

	"github.com/GeorgesCH/SSDTeamProject/models"
)

// AuthService handles credential verification and the session token
// lifecycle.
type AuthService interface {
	// Login verifies the email/password pair and returns the matching
	// account. Unknown email and wrong password both yield
	// ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed session token for the given account.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// VerifyToken validates a raw token string and resolves its subject to a
	// live account. A token whose subject was deleted after issuance fails
	// verification.
	VerifyToken(ctx context.Context, tokenString string) (models.User, error)
}

// UserService implements account lifecycle operations gated by the access
// policy.
type UserService interface {
	// CreateUser registers a new account: the role is validated against the
	// closed set, the password is bcrypt-hashed, and a fresh encryption key
	// is generated. Admin only.
	CreateUser(ctx context.Context, actor models.User, input NewUserInput) (models.User, error)

	// GetUser returns the account registered under email. Admin only.
	GetUser(ctx context.Context, actor models.User, email string) (models.User, error)

	// ListUsers returns every registered account. Admin only.
	ListUsers(ctx context.Context, actor models.User) ([]models.User, error)

	// ListAstronauts returns all Astronaut accounts. Admin or Medic.
	ListAstronauts(ctx context.Context, actor models.User) ([]models.User, error)

	// ListMedics returns all Medic accounts. Admin or Astronaut.
	ListMedics(ctx context.Context, actor models.User) ([]models.User, error)

	// UpdateUser applies a partial update to the account registered under
	// email. Admin only.
	UpdateUser(ctx context.Context, actor models.User, email string, input UpdateUserInput) (models.User, error)

	// DeleteUser removes the account registered under email together with
	// everything it owns, in one transaction. Admin only, except that any
	// account may delete itself.
	DeleteUser(ctx context.Context, actor models.User, email string) error
}

// RecordService implements encrypted health-record submission and retrieval.
type RecordService interface {
	// SubmitRecord encrypts value under the actor's key and stores it.
	// Astronauts only, always for themselves.
	SubmitRecord(ctx context.Context, actor models.User, kind, value string) (models.DecryptedRecord, error)

	// ListRecords returns the decrypted records of the given kind owned by
	// ownerEmail (the actor itself when empty). Visibility follows the
	// access policy: owner always, Admin/Medic for astronaut targets.
	ListRecords(ctx context.Context, actor models.User, kind, ownerEmail string) ([]models.DecryptedRecord, error)
}

// MessageService implements encrypted private messaging.
type MessageService interface {
	// SendMessage encrypts body under the recipient's key and stores the
	// message. An unknown recipient email yields ErrRecipientNotFound.
	SendMessage(ctx context.Context, actor models.User, recipientEmail, title, body string) (models.DecryptedMessage, error)

	// ListMessages returns every decrypted message the actor authored or
	// received, newest first. Messages whose recipient account no longer
	// exists are skipped.
	ListMessages(ctx context.Context, actor models.User) ([]models.DecryptedMessage, error)

	// ListConversation returns the decrypted two-sided exchange between the
	// actor and the account registered under otherEmail, newest first.
	ListConversation(ctx context.Context, actor models.User, otherEmail string) ([]models.DecryptedMessage, error)
}
