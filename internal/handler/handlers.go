package handler

import (
	"github.com/GeorgesCH/SSDTeamProject/internal/config"
	"github.com/GeorgesCH/SSDTeamProject/internal/handler/http"
	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
	"github.com/GeorgesCH/SSDTeamProject/internal/service"
)

// Handlers aggregates the transport handlers enabled by configuration. The
// API is HTTP-only, so an empty HTTP address is a fatal misconfiguration.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
