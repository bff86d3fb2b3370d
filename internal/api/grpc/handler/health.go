package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/userdir/internal/logger"
	"github.com/dtroode/userdir/internal/model"
)

// ServiceName is the health-checked service name; "" reports the whole server.
const ServiceName = "userdir.Directory"

const pingTimeout = 2 * time.Second

// Health keeps the standard gRPC health service in sync with store reachability.
type Health struct {
	server   *health.Server
	store    model.Pinger
	interval time.Duration
	logger   *logger.Logger
}

// NewHealth creates a Health checker probing store every interval.
func NewHealth(store model.Pinger, interval time.Duration, logger *logger.Logger) *Health {
	return &Health{
		server:   health.NewServer(),
		store:    store,
		interval: interval,
		logger:   logger,
	}
}

// Server returns the health service to register on a gRPC server.
func (h *Health) Server() healthpb.HealthServer {
	return h.server
}

// Check pings the store once and publishes the resulting status.
func (h *Health) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Health checker: store unreachable", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(ServiceName, status)
	return status
}

// Run checks the store until ctx is done, then marks every service as not serving.
func (h *Health) Run(ctx context.Context) {
	h.Check(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}
