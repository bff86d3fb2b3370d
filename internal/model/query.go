package model

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// CompositeKey is the (name fragment, grade) pair decoded from a single path segment.
type CompositeKey struct {
	NameFragment string
	Grade        uint8
}

// Filter narrows a search by exact age and active status.
// A nil *Filter means no filtering on either dimension.
type Filter struct {
	Age    uint8
	Active bool
}

// Dialect selects the SQL flavour a query template is written in.
type Dialect int

const (
	// DialectPostgres writes numbered placeholders ($1, $2, ...).
	DialectPostgres Dialect = iota
	// DialectSQLite writes positional placeholders (?).
	DialectSQLite
)

func (d Dialect) String() string {
	if d == DialectSQLite {
		return "sqlite"
	}
	return "postgres"
}

var dollarPlaceholder = regexp.MustCompile(`\$[0-9]+`)

// CountPlaceholders returns how many bind placeholders of this dialect appear in template.
func (d Dialect) CountPlaceholders(template string) int {
	if d == DialectSQLite {
		return strings.Count(template, "?")
	}
	return len(dollarPlaceholder.FindAllStringIndex(template, -1))
}

// QuerySpec is a query template plus its ordered bound parameters.
type QuerySpec struct {
	Template string
	Params   []any
	Dialect  Dialect
}

// Balanced reports whether the template references exactly as many
// placeholders as there are bound parameters.
func (q QuerySpec) Balanced() bool {
	return q.Dialect.CountPlaceholders(q.Template) == len(q.Params)
}

// QueryExecutor runs a composed query against the backing store.
type QueryExecutor interface {
	Execute(ctx context.Context, spec QuerySpec) ([]User, error)
	Dialect() Dialect
	Ping(ctx context.Context) error
}

// UserDirectory is the read-only lookup surface consumed by transports.
type UserDirectory interface {
	Lookup(ctx context.Context, id uuid.UUID) (User, error)
	Search(ctx context.Context, key CompositeKey, filter *Filter) ([]User, error)
}
