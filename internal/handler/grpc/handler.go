// Package grpc exposes inspection writes and bulk reconciliation over gRPC.
//
// Messages are the same JSON documents the REST API accepts, carried by a
// JSON codec registered under the "json" content subtype; the service
// descriptor is written by hand instead of being generated from a .proto
// file.
package grpc

import (
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/service"
	"google.golang.org/grpc"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches the inspections service to server.
func (h *Handler) Register(server grpc.ServiceRegistrar) {
	server.RegisterService(&InspectionsServiceDesc, h)
}

// ServerOptions returns the options the gRPC server needs: the JSON codec
// and the trace, logging and auth interceptors in that order.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ForceServerCodec(jsonCodec{}),
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging, h.auth),
	}
}
