package handler

import (
	"github.com/MKhiriev/go-item-reviews/internal/config"
	"github.com/MKhiriev/go-item-reviews/internal/handler/http"
	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/service"
)

// Handlers groups the transport handlers built for the configured listeners.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler when an HTTP address is configured.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
