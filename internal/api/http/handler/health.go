package handler

import (
	"context"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/dtroode/userdir/internal/logger"
	"github.com/dtroode/userdir/internal/model"
)

const healthTimeout = 2 * time.Second

// Health reports liveness together with store reachability.
type Health struct {
	store  model.Pinger
	logger *logger.Logger
}

// NewHealth creates a Health handler probing store.
func NewHealth(store model.Pinger, logger *logger.Logger) *Health {
	return &Health{store: store, logger: logger}
}

// HandleHealthz responds 200 when the store answers a ping and 503 otherwise.
func (h *Health) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	status, body := http.StatusOK, map[string]string{"status": "ok"}
	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Health handler: store unreachable", "error", err)
		status, body = http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(ServiceHeader, ServiceName)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Health handler: failed to write response", "error", err)
	}
}
