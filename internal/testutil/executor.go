package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/userdir/internal/model"
)

var _ model.QueryExecutor = (*MemoryExecutor)(nil)

// MemoryExecutor evaluates composed queries against an in-memory user list.
// It understands the bound parameter layouts the query composer produces:
// (id) for lookups and (name, grade[, age, active]) for searches.
type MemoryExecutor struct {
	mu    sync.Mutex
	users []model.User
	err   error
	calls []model.QuerySpec
}

func NewMemoryExecutor(users ...model.User) *MemoryExecutor {
	return &MemoryExecutor{users: users}
}

// FailWith makes every following call return err.
func (m *MemoryExecutor) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns the specs executed so far.
func (m *MemoryExecutor) Calls() []model.QuerySpec {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.QuerySpec(nil), m.calls...)
}

func (m *MemoryExecutor) Dialect() model.Dialect {
	return model.DialectPostgres
}

func (m *MemoryExecutor) Ping(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *MemoryExecutor) Execute(_ context.Context, spec model.QuerySpec) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, spec)
	if m.err != nil {
		return nil, m.err
	}

	var match func(model.User) bool
	switch p := spec.Params; len(p) {
	case 1:
		id := p[0].(uuid.UUID)
		match = func(u model.User) bool { return u.ID == id }
	case 2, 4:
		name, grade := p[0].(string), p[1].(int)
		match = func(u model.User) bool {
			if !strings.Contains(u.Name, name) || int(u.Grade) != grade {
				return false
			}
			if len(p) == 4 {
				return int(u.Age) == p[2].(int) && u.Active == p[3].(bool)
			}
			return true
		}
	default:
		return nil, fmt.Errorf("unexpected parameter layout: %d params", len(p))
	}

	var out []model.User
	for _, u := range m.users {
		if match(u) {
			out = append(out, u)
		}
	}
	return out, nil
}
