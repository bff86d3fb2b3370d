package context

import (
	"context"

	"github.com/dtroode/userdir/internal/model"
)

type contextKey string

// counterKey is the context key the visitor counter handle is stored under.
const counterKey contextKey = "visitor_counter"

// Manager attaches per-request collaborators to HTTP request contexts.
type Manager struct{}

// NewManager creates a new HTTP context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetCounterToContext returns a copy of ctx carrying counter.
func (m *Manager) SetCounterToContext(ctx context.Context, counter model.VisitorCounter) context.Context {
	return context.WithValue(ctx, counterKey, counter)
}

// GetCounterFromContext retrieves the visitor counter handle from ctx.
//
// Returns the counter and a boolean indicating if one was found.
func (m *Manager) GetCounterFromContext(ctx context.Context) (model.VisitorCounter, bool) {
	counter, ok := ctx.Value(counterKey).(model.VisitorCounter)
	if !ok || counter == nil {
		return nil, false
	}
	return counter, true
}
