// Package visitor counts handled requests for observability.
package visitor

import (
	"sync/atomic"

	"github.com/dtroode/userdir/internal/model"
)

var _ model.VisitorCounter = (*Counter)(nil)

// Counter is a monotonically increasing request counter. The zero value is ready to use.
type Counter struct {
	n atomic.Uint64
}

// NewCounter creates a Counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Increment adds one visit and returns the new total.
func (c *Counter) Increment() uint64 {
	return c.n.Add(1)
}

// Load returns the current total.
func (c *Counter) Load() uint64 {
	return c.n.Load()
}
