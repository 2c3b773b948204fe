package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/GeorgesCH/SSDTeamProject/internal/crypto"
	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
	"github.com/GeorgesCH/SSDTeamProject/internal/policy"
	"github.com/GeorgesCH/SSDTeamProject/internal/store"
	"github.com/GeorgesCH/SSDTeamProject/models"
)

// NewUserInput carries the plaintext fields of an account registration
// request. The password is hashed and the encryption key generated inside
// CreateUser; neither ever reaches the repository in plain form.
type NewUserInput struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Password  string `json:"password"`
}

// UpdateUserInput carries the optional fields of a partial account update.
// Nil fields are left untouched.
type UpdateUserInput struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role"`
	Password  *string `json:"password"`
}

// userService is the concrete implementation of UserService. Every operation
// consults the access policy before touching the repository.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// CreateUser registers a new account.
//
// The role string is validated against the closed set, the password is
// bcrypt-hashed, and a fresh encryption key is generated for the account.
// A duplicate email surfaces as store.ErrEmailAlreadyExists from the
// database unique constraint; there is no check-then-act window.
func (u *userService) CreateUser(ctx context.Context, actor models.User, input NewUserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := policy.Authorize(actor, policy.ActionCreateUser, nil); err != nil {
		return models.User{}, err
	}

	if input.Email == "" || input.Password == "" {
		log.Error().Str("email", input.Email).Msg("empty email or password on user creation")
		return models.User{}, fmt.Errorf("%w: email and password are required", ErrInvalidDataProvided)
	}

	role, err := models.ParseRole(input.Role)
	if err != nil {
		log.Error().Str("role", input.Role).Msg("unknown role on user creation")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	key, err := crypto.GenerateKey()
	if err != nil {
		log.Err(err).Msg("encryption key generation failed")
		return models.User{}, fmt.Errorf("encryption key generation failed: %w", err)
	}

	created, err := u.userRepository.CreateUser(ctx, models.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
		PasswordHash: string(passwordHash),
		Key:          string(key),
	})
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// GetUser returns the account registered under email.
func (u *userService) GetUser(ctx context.Context, actor models.User, email string) (models.User, error) {
	if err := policy.Authorize(actor, policy.ActionViewUser, nil); err != nil {
		return models.User{}, err
	}

	found, err := u.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return found, nil
}

// ListUsers returns every registered account.
func (u *userService) ListUsers(ctx context.Context, actor models.User) ([]models.User, error) {
	if err := policy.Authorize(actor, policy.ActionListUsers, nil); err != nil {
		return nil, err
	}

	return u.userRepository.GetAllUsers(ctx)
}

// ListAstronauts returns all Astronaut accounts.
func (u *userService) ListAstronauts(ctx context.Context, actor models.User) ([]models.User, error) {
	if err := policy.Authorize(actor, policy.ActionListAstronauts, nil); err != nil {
		return nil, err
	}

	return u.userRepository.GetUsersByRole(ctx, models.RoleAstronaut)
}

// ListMedics returns all Medic accounts.
func (u *userService) ListMedics(ctx context.Context, actor models.User) ([]models.User, error) {
	if err := policy.Authorize(actor, policy.ActionListMedics, nil); err != nil {
		return nil, err
	}

	return u.userRepository.GetUsersByRole(ctx, models.RoleMedic)
}

// UpdateUser applies a partial update to the account registered under email.
// A role change is validated against the closed set and a password change is
// re-hashed before storage.
func (u *userService) UpdateUser(ctx context.Context, actor models.User, email string, input UpdateUserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := policy.Authorize(actor, policy.ActionUpdateUser, nil); err != nil {
		return models.User{}, err
	}

	target, err := u.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	update := models.UserUpdate{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	if input.Role != nil {
		role, err := models.ParseRole(*input.Role)
		if err != nil {
			log.Error().Str("role", *input.Role).Msg("unknown role on user update")
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		update.Role = &role
	}

	if input.Password != nil {
		if *input.Password == "" {
			return models.User{}, fmt.Errorf("%w: password must not be empty", ErrInvalidDataProvided)
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}

		hash := string(passwordHash)
		update.PasswordHash = &hash
	}

	if update.Empty() {
		return models.User{}, fmt.Errorf("%w: no fields to update", ErrInvalidDataProvided)
	}

	updated, err := u.userRepository.UpdateUser(ctx, target.UserID, update)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the account registered under email together with every
// record it owns and every message it authored or received, atomically.
// Self-deletion is allowed for any role; deleting another account requires
// Admin.
func (u *userService) DeleteUser(ctx context.Context, actor models.User, email string) error {
	log := logger.FromContext(ctx)

	// Deny by role before looking the target up, so a rejected caller
	// cannot tell whether the email exists.
	if email != actor.Email {
		if err := policy.Authorize(actor, policy.ActionDeleteUser, nil); err != nil {
			return err
		}
	}

	target, err := u.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if err := policy.Authorize(actor, policy.ActionDeleteUser, &target); err != nil {
		return err
	}

	if err := u.userRepository.DeleteUserCascade(ctx, target); err != nil {
		log.Err(err).Str("email", email).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	log.Info().Str("email", email).Int64("user_id", target.UserID).Msg("user deleted with all owned data")
	return nil
}
