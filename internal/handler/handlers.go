package handler

import (
	"errors"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-insight-keeper/internal/handler/http"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/service"
)

// errNoHandlersAreCreated means neither SERVER_ADDRESS nor
// SERVER_GRPC_ADDRESS is set.
var errNoHandlersAreCreated = errors.New("no handlers are created")

// Handlers groups the transport handlers enabled by the configuration.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the HTTP API handler when an HTTP address is set and
// the gRPC health handler when a gRPC address is set. pinger backs the
// health status.
func NewHandlers(services *service.Services, pinger grpc.Pinger, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
