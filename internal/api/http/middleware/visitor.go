package middleware

import (
	"net/http"

	"github.com/dtroode/userdir/internal/model"
)

// Visitor injects the process visitor counter into every request context.
type Visitor struct {
	counter        model.VisitorCounter
	contextManager model.ContextManager
}

// NewVisitor creates a Visitor middleware for counter.
func NewVisitor(counter model.VisitorCounter, contextManager model.ContextManager) *Visitor {
	return &Visitor{counter: counter, contextManager: contextManager}
}

// Handle attaches the counter handle to the request context.
func (v *Visitor) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := v.contextManager.SetCounterToContext(r.Context(), v.counter)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
