package service

import (
	"github.com/GeorgesCH/SSDTeamProject/internal/config"
	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
	"github.com/GeorgesCH/SSDTeamProject/internal/store"
)

// Services aggregates the business-logic layer. It is the unit handed to the
// transport handlers at wiring time.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	RecordService  RecordService
	MessageService MessageService
}

func NewServices(repos *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.Users, cfg.App, logger),
		UserService:    NewUserService(repos.Users, logger),
		RecordService:  NewRecordService(repos.Users, repos.Records, logger),
		MessageService: NewMessageService(repos.Users, repos.Messages, logger),
	}
}
