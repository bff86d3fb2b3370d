package model

import (
	"context"
)

// VisitorCounter counts handled requests for the lifetime of the process.
type VisitorCounter interface {
	Increment() uint64
	Load() uint64
}

// ContextManager attaches per-request collaborators to a context.
type ContextManager interface {
	SetCounterToContext(ctx context.Context, counter VisitorCounter) context.Context
	GetCounterFromContext(ctx context.Context) (VisitorCounter, bool)
}
