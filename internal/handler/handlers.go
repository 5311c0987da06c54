package handler

import (
	"github.com/MKhiriev/go-braintacle/internal/config"
	"github.com/MKhiriev/go-braintacle/internal/handler/http"
	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/service"
	"github.com/MKhiriev/go-braintacle/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, validator validators.Validator, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, validator, logger),
	}, nil
}
