package service

import (
	"context"

	"github.com/GeorgesCH/SSDTeamProject/models"
)

// Function-field mocks for the store interfaces. Unset fields fall back to
// zero-value returns.

type mockUserRepository struct {
	createFn     func(ctx context.Context, user models.User) (models.User, error)
	findEmailFn  func(ctx context.Context, email string) (models.User, error)
	getAllFn     func(ctx context.Context) ([]models.User, error)
	getByRoleFn  func(ctx context.Context, role models.Role) ([]models.User, error)
	updateFn     func(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	deleteCascFn func(ctx context.Context, user models.User) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findEmailFn != nil {
		return m.findEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) GetUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	if m.getByRoleFn != nil {
		return m.getByRoleFn(ctx, role)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, update)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) DeleteUserCascade(ctx context.Context, user models.User) error {
	if m.deleteCascFn != nil {
		return m.deleteCascFn(ctx, user)
	}
	return nil
}

type mockRecordRepository struct {
	createFn     func(ctx context.Context, record models.Record) (models.Record, error)
	getByOwnerFn func(ctx context.Context, ownerID int64, kind models.RecordKind) ([]models.Record, error)
}

func (m *mockRecordRepository) CreateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	if m.createFn != nil {
		return m.createFn(ctx, record)
	}
	return record, nil
}

func (m *mockRecordRepository) GetRecordsByOwner(ctx context.Context, ownerID int64, kind models.RecordKind) ([]models.Record, error) {
	if m.getByOwnerFn != nil {
		return m.getByOwnerFn(ctx, ownerID, kind)
	}
	return nil, nil
}

type mockMessageRepository struct {
	createFn       func(ctx context.Context, message models.Message) (models.Message, error)
	getForUserFn   func(ctx context.Context, user models.User) ([]models.Message, error)
	conversationFn func(ctx context.Context, user models.User, other models.User) ([]models.Message, error)
}

func (m *mockMessageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	if m.createFn != nil {
		return m.createFn(ctx, message)
	}
	return message, nil
}

func (m *mockMessageRepository) GetMessagesForUser(ctx context.Context, user models.User) ([]models.Message, error) {
	if m.getForUserFn != nil {
		return m.getForUserFn(ctx, user)
	}
	return nil, nil
}

func (m *mockMessageRepository) GetConversation(ctx context.Context, user models.User, other models.User) ([]models.Message, error) {
	if m.conversationFn != nil {
		return m.conversationFn(ctx, user, other)
	}
	return nil, nil
}
