package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
	"github.com/GeorgesCH/SSDTeamProject/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup, partial update, and the atomic
// cascade delete against the "users", "records" and "posts" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - unique-constraint violation on email → [ErrEmailAlreadyExists]
//   - CHECK-constraint violation on role → [ErrInvalidRoleValue]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.FirstName, user.LastName, user.Email, user.PasswordHash, string(user.Role), user.Key)

	var created models.User
	if err := scanUser(row, &created); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("error creating user")

		switch {
		case isUniqueViolation(err):
			return models.User{}, ErrEmailAlreadyExists
		case isCheckViolation(err):
			return models.User{}, ErrInvalidRoleValue
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the account registered under email.
// An empty result set maps to [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)
	if err := scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Str("email", email).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetAllUsers returns every registered account ordered by ID.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return r.queryUsers(ctx, "*userRepository.GetAllUsers", getAllUsers)
}

// GetUsersByRole returns every account holding role, ordered by ID.
func (r *userRepository) GetUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	return r.queryUsers(ctx, "*userRepository.GetUsersByRole", getUsersByRole, string(role))
}

// UpdateUser applies the non-nil fields of update to the account and returns
// the stored state after the change.
//
// Error handling mirrors CreateUser for constraint violations; an update
// matching no row maps to [ErrUserNotFound], and an update with no fields
// set fails with [ErrNothingToUpdate] before touching the database.
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(userID, update)
	if err != nil {
		return models.User{}, err
	}

	var updated models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanUser(row, &updated); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", userID).Msg("error updating user")

		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrUserNotFound
		case isUniqueViolation(err):
			return models.User{}, ErrEmailAlreadyExists
		case isCheckViolation(err):
			return models.User{}, ErrInvalidRoleValue
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteUserCascade removes the account and every row that references it —
// owned records, authored messages, and messages addressed to its email —
// inside one transaction, so a crash mid-cascade cannot leave orphans.
func (r *userRepository) DeleteUserCascade(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserCascade").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteUserRecords, user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserCascade").Int64("user_id", user.UserID).Msg("failed to delete records")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := tx.ExecContext(ctx, deleteUserMessages, user.UserID, user.Email); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserCascade").Int64("user_id", user.UserID).Msg("failed to delete messages")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result, err := tx.ExecContext(ctx, deleteUser, user.UserID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserCascade").Int64("user_id", user.UserID).Msg("failed to delete user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserCascade").Int64("user_id", user.UserID).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *userRepository) queryUsers(ctx context.Context, funcName, query string, args ...any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute users query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)

	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.UserID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Key,
		&user.CreatedAt,
	)
}
