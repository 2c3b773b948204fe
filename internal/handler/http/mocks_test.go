package http

import (
	"context"
	"testing"

	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
	"github.com/GeorgesCH/SSDTeamProject/internal/service"
	"github.com/GeorgesCH/SSDTeamProject/models"
)

// Function-field mocks for the service interfaces. Each method field can be
// overridden per test case; unset fields fall back to zero-value returns.

type mockAuthService struct {
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	verifyTokenFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed.jwt.token"}, nil
}

func (m *mockAuthService) VerifyToken(ctx context.Context, tokenString string) (models.User, error) {
	if m.verifyTokenFn != nil {
		return m.verifyTokenFn(ctx, tokenString)
	}
	return models.User{}, service.ErrTokenIsExpiredOrInvalid
}

type mockUserService struct {
	createFn         func(ctx context.Context, actor models.User, input service.NewUserInput) (models.User, error)
	getFn            func(ctx context.Context, actor models.User, email string) (models.User, error)
	listFn           func(ctx context.Context, actor models.User) ([]models.User, error)
	listAstronautsFn func(ctx context.Context, actor models.User) ([]models.User, error)
	listMedicsFn     func(ctx context.Context, actor models.User) ([]models.User, error)
	updateFn         func(ctx context.Context, actor models.User, email string, input service.UpdateUserInput) (models.User, error)
	deleteFn         func(ctx context.Context, actor models.User, email string) error
}

func (m *mockUserService) CreateUser(ctx context.Context, actor models.User, input service.NewUserInput) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, actor, input)
	}
	return models.User{}, nil
}

func (m *mockUserService) GetUser(ctx context.Context, actor models.User, email string) (models.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, actor, email)
	}
	return models.User{}, nil
}

func (m *mockUserService) ListUsers(ctx context.Context, actor models.User) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx, actor)
	}
	return nil, nil
}

func (m *mockUserService) ListAstronauts(ctx context.Context, actor models.User) ([]models.User, error) {
	if m.listAstronautsFn != nil {
		return m.listAstronautsFn(ctx, actor)
	}
	return nil, nil
}

func (m *mockUserService) ListMedics(ctx context.Context, actor models.User) ([]models.User, error) {
	if m.listMedicsFn != nil {
		return m.listMedicsFn(ctx, actor)
	}
	return nil, nil
}

func (m *mockUserService) UpdateUser(ctx context.Context, actor models.User, email string, input service.UpdateUserInput) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, actor, email, input)
	}
	return models.User{}, nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, actor models.User, email string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, actor, email)
	}
	return nil
}

type mockRecordService struct {
	submitFn func(ctx context.Context, actor models.User, kind, value string) (models.DecryptedRecord, error)
	listFn   func(ctx context.Context, actor models.User, kind, ownerEmail string) ([]models.DecryptedRecord, error)
}

func (m *mockRecordService) SubmitRecord(ctx context.Context, actor models.User, kind, value string) (models.DecryptedRecord, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, actor, kind, value)
	}
	return models.DecryptedRecord{}, nil
}

func (m *mockRecordService) ListRecords(ctx context.Context, actor models.User, kind, ownerEmail string) ([]models.DecryptedRecord, error) {
	if m.listFn != nil {
		return m.listFn(ctx, actor, kind, ownerEmail)
	}
	return nil, nil
}

type mockMessageService struct {
	sendFn         func(ctx context.Context, actor models.User, recipientEmail, title, body string) (models.DecryptedMessage, error)
	listFn         func(ctx context.Context, actor models.User) ([]models.DecryptedMessage, error)
	conversationFn func(ctx context.Context, actor models.User, otherEmail string) ([]models.DecryptedMessage, error)
}

func (m *mockMessageService) SendMessage(ctx context.Context, actor models.User, recipientEmail, title, body string) (models.DecryptedMessage, error) {
	if m.sendFn != nil {
		return m.sendFn(ctx, actor, recipientEmail, title, body)
	}
	return models.DecryptedMessage{}, nil
}

func (m *mockMessageService) ListMessages(ctx context.Context, actor models.User) ([]models.DecryptedMessage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, actor)
	}
	return nil, nil
}

func (m *mockMessageService) ListConversation(ctx context.Context, actor models.User, otherEmail string) ([]models.DecryptedMessage, error) {
	if m.conversationFn != nil {
		return m.conversationFn(ctx, actor, otherEmail)
	}
	return nil, nil
}

// testServices bundles the mocks into a service.Services the Handler can use.
type testServices struct {
	auth     *mockAuthService
	users    *mockUserService
	records  *mockRecordService
	messages *mockMessageService
}

func newTestServices() *testServices {
	return &testServices{
		auth:     &mockAuthService{},
		users:    &mockUserService{},
		records:  &mockRecordService{},
		messages: &mockMessageService{},
	}
}

func newTestHandler(t *testing.T, svcs *testServices) *Handler {
	t.Helper()

	return NewHandler(&service.Services{
		AuthService:    svcs.auth,
		UserService:    svcs.users,
		RecordService:  svcs.records,
		MessageService: svcs.messages,
	}, logger.Nop())
}

// authenticatedAs configures the auth mock so that any bearer token resolves
// to the given account.
func (s *testServices) authenticatedAs(user models.User) {
	s.auth.verifyTokenFn = func(ctx context.Context, tokenString string) (models.User, error) {
		return user, nil
	}
}

var (
	adminFixture = models.User{UserID: 1, Email: "admin@email.com", Role: models.RoleAdmin}
	astroFixture = models.User{UserID: 2, Email: "astro@email.com", Role: models.RoleAstronaut}
	medicFixture = models.User{UserID: 3, Email: "medic@email.com", Role: models.RoleMedic}
)
