package http

import (
	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
	"github.com/GeorgesCH/SSDTeamProject/internal/service"
)

// Handler carries the service layer and the base logger shared by every
// route. Request-scoped loggers are derived in the middleware chain; the
// field here is only the root they fork from.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	return &Handler{services: services, logger: logger}
}
