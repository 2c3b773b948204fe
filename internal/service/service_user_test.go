package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
	"github.com/GeorgesCH/SSDTeamProject/internal/policy"
	"github.com/GeorgesCH/SSDTeamProject/internal/store"
	"github.com/GeorgesCH/SSDTeamProject/models"
)

var (
	adminActor = models.User{UserID: 1, Email: "admin@email.com", Role: models.RoleAdmin}
	astroActor = models.User{UserID: 2, Email: "astro@email.com", Role: models.RoleAstronaut, Key: testKey}
	medicActor = models.User{UserID: 3, Email: "medic@email.com", Role: models.RoleMedic}
)

// Fernet key used across service tests (generated once, constant so ciphertext
// fixtures stay reproducible).
const testKey = "cGFzc3BocmFzZXdoaWNobmVlZHN0b2JlMzJieXRlcyE="

func TestCreateUser_HashesPasswordAndGeneratesKey(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 10
			return user, nil
		},
	}

	svc := NewUserService(repo, logger.Nop())
	created, err := svc.CreateUser(context.Background(), adminActor, NewUserInput{
		Email:     "new@email.com",
		FirstName: "Sally",
		LastName:  "Ride",
		Role:      "Astronaut",
		Password:  "plaintext-password",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.UserID)
	assert.Equal(t, models.RoleAstronaut, created.Role)

	assert.NotEqual(t, "plaintext-password", persisted.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("plaintext-password")))
	assert.NotEmpty(t, persisted.Key)
}

func TestCreateUser_UnknownRole(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, logger.Nop())

	_, err := svc.CreateUser(context.Background(), adminActor, NewUserInput{
		Email:    "new@email.com",
		Role:     "Pilot",
		Password: "pw",
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, models.ErrUnknownRole)
}

func TestCreateUser_RequiresAdmin(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, logger.Nop())

	_, err := svc.CreateUser(context.Background(), astroActor, NewUserInput{
		Email:    "new@email.com",
		Role:     "Medic",
		Password: "pw",
	})

	assert.ErrorIs(t, err, policy.ErrRoleDenied)
}

func TestCreateUser_MissingFields(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, logger.Nop())

	_, err := svc.CreateUser(context.Background(), adminActor, NewUserInput{Role: "Medic"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	svc := NewUserService(repo, logger.Nop())
	_, err := svc.CreateUser(context.Background(), adminActor, NewUserInput{
		Email:    "taken@email.com",
		Role:     "Medic",
		Password: "pw",
	})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestListUsers_AdminOnly(t *testing.T) {
	repo := &mockUserRepository{
		getAllFn: func(ctx context.Context) ([]models.User, error) {
			return []models.User{adminActor, astroActor}, nil
		},
	}
	svc := NewUserService(repo, logger.Nop())

	users, err := svc.ListUsers(context.Background(), adminActor)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = svc.ListUsers(context.Background(), medicActor)
	assert.ErrorIs(t, err, policy.ErrRoleDenied)
}

func TestListAstronauts_Visibility(t *testing.T) {
	repo := &mockUserRepository{
		getByRoleFn: func(ctx context.Context, role models.Role) ([]models.User, error) {
			assert.Equal(t, models.RoleAstronaut, role)
			return []models.User{astroActor}, nil
		},
	}
	svc := NewUserService(repo, logger.Nop())

	for _, actor := range []models.User{adminActor, medicActor} {
		users, err := svc.ListAstronauts(context.Background(), actor)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	}

	_, err := svc.ListAstronauts(context.Background(), astroActor)
	assert.ErrorIs(t, err, policy.ErrRoleDenied)
}

func TestListMedics_Visibility(t *testing.T) {
	repo := &mockUserRepository{
		getByRoleFn: func(ctx context.Context, role models.Role) ([]models.User, error) {
			assert.Equal(t, models.RoleMedic, role)
			return []models.User{medicActor}, nil
		},
	}
	svc := NewUserService(repo, logger.Nop())

	for _, actor := range []models.User{adminActor, astroActor} {
		users, err := svc.ListMedics(context.Background(), actor)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	}

	_, err := svc.ListMedics(context.Background(), medicActor)
	assert.ErrorIs(t, err, policy.ErrRoleDenied)
}

func TestUpdateUser_RehashesPassword(t *testing.T) {
	target := models.User{UserID: 5, Email: "target@email.com", Role: models.RoleMedic}
	var applied models.UserUpdate
	repo := &mockUserRepository{
		findEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return target, nil
		},
		updateFn: func(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
			assert.Equal(t, target.UserID, userID)
			applied = update
			return target, nil
		},
	}

	newPassword := "rotated-password"
	svc := NewUserService(repo, logger.Nop())
	_, err := svc.UpdateUser(context.Background(), adminActor, target.Email, UpdateUserInput{Password: &newPassword})

	require.NoError(t, err)
	require.NotNil(t, applied.PasswordHash)
	assert.NotEqual(t, newPassword, *applied.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*applied.PasswordHash), []byte(newPassword)))
}

func TestUpdateUser_InvalidRole(t *testing.T) {
	repo := &mockUserRepository{
		findEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 5, Email: email}, nil
		},
	}

	badRole := "Commander"
	svc := NewUserService(repo, logger.Nop())
	_, err := svc.UpdateUser(context.Background(), adminActor, "target@email.com", UpdateUserInput{Role: &badRole})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdateUser_RequiresAdmin(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, logger.Nop())

	name := "New"
	_, err := svc.UpdateUser(context.Background(), medicActor, "target@email.com", UpdateUserInput{FirstName: &name})
	assert.ErrorIs(t, err, policy.ErrRoleDenied)
}

func TestUpdateUser_NoFields(t *testing.T) {
	repo := &mockUserRepository{
		findEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 5, Email: email}, nil
		},
	}

	svc := NewUserService(repo, logger.Nop())
	_, err := svc.UpdateUser(context.Background(), adminActor, "target@email.com", UpdateUserInput{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDeleteUser_AdminDeletesOther(t *testing.T) {
	target := models.User{UserID: 5, Email: "target@email.com", Role: models.RoleMedic}
	deleted := false
	repo := &mockUserRepository{
		findEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return target, nil
		},
		deleteCascFn: func(ctx context.Context, user models.User) error {
			assert.Equal(t, target.UserID, user.UserID)
			deleted = true
			return nil
		},
	}

	svc := NewUserService(repo, logger.Nop())
	err := svc.DeleteUser(context.Background(), adminActor, target.Email)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteUser_SelfDeletionAllowedForAnyRole(t *testing.T) {
	repo := &mockUserRepository{
		findEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return astroActor, nil
		},
	}

	svc := NewUserService(repo, logger.Nop())
	err := svc.DeleteUser(context.Background(), astroActor, astroActor.Email)

	assert.NoError(t, err)
}

func TestDeleteUser_NonAdminCannotDeleteOther(t *testing.T) {
	target := models.User{UserID: 5, Email: "target@email.com", Role: models.RoleMedic}
	repo := &mockUserRepository{
		findEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return target, nil
		},
	}

	svc := NewUserService(repo, logger.Nop())
	err := svc.DeleteUser(context.Background(), astroActor, target.Email)

	assert.ErrorIs(t, err, policy.ErrRoleDenied)
}

func TestDeleteUser_NonAdminDeniedBeforeTargetLookup(t *testing.T) {
	// The denial must not reveal whether the requested email is registered:
	// a non-admin deleting an unknown account gets the same role denial as
	// for an existing one, and the lookup never runs.
	repo := &mockUserRepository{
		findEmailFn: func(ctx context.Context, email string) (models.User, error) {
			t.Fatal("target lookup must not run for a denied actor")
			return models.User{}, store.ErrUserNotFound
		},
	}

	svc := NewUserService(repo, logger.Nop())
	err := svc.DeleteUser(context.Background(), astroActor, "ghost@email.com")

	assert.ErrorIs(t, err, policy.ErrRoleDenied)
	assert.NotErrorIs(t, err, store.ErrUserNotFound)
}

func TestDeleteUser_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}

	svc := NewUserService(repo, logger.Nop())
	err := svc.DeleteUser(context.Background(), adminActor, "ghost@email.com")

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
