package router

import (
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/userdir/internal/api/grpc/handler"
	"github.com/dtroode/userdir/internal/api/grpc/middleware"
	"github.com/dtroode/userdir/internal/logger"
)

// Router registers the operational gRPC services.
type Router struct {
	health *handler.Health
	logger *logger.Logger
}

// New creates new gRPC Router instance.
func New(health *handler.Health, logger *logger.Logger) *Router {
	return &Router{
		health: health,
		logger: logger,
	}
}

// Register builds a gRPC server with logging and recovery interceptors
// and the standard health service.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(logging.Unary()...),
		grpc.ChainStreamInterceptor(logging.Stream()...),
	)
	healthpb.RegisterHealthServer(s, r.health.Server())

	return s
}
