package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/userdir/internal/model"
)

const selectUsers = `SELECT id, name, age, grade, active FROM users`

// Composer builds parameterized queries against the users table for one SQL dialect.
type Composer struct {
	dialect model.Dialect
}

// NewComposer creates a Composer for the given dialect.
func NewComposer(dialect model.Dialect) *Composer {
	return &Composer{dialect: dialect}
}

// builder keeps clause text and bound parameters in lock-step.
type builder struct {
	dialect model.Dialect
	sql     strings.Builder
	params  []any
}

func (b *builder) write(fragment string) {
	b.sql.WriteString(fragment)
}

// bind appends value to the parameters and writes its placeholder.
func (b *builder) bind(value any) {
	b.params = append(b.params, value)
	if b.dialect == model.DialectSQLite {
		b.sql.WriteString("?")
		return
	}
	b.sql.WriteString("$")
	b.sql.WriteString(strconv.Itoa(len(b.params)))
}

func (b *builder) spec() model.QuerySpec {
	spec := model.QuerySpec{
		Template: b.sql.String(),
		Params:   b.params,
		Dialect:  b.dialect,
	}
	if !spec.Balanced() {
		panic(fmt.Sprintf("query: %d placeholders for %d params in %q",
			spec.Dialect.CountPlaceholders(spec.Template), len(spec.Params), spec.Template))
	}
	return spec
}

// Search composes the name/grade search with optional age and active predicates.
// Parameters are bound in clause order: name fragment, grade, then age and active.
func (c *Composer) Search(key model.CompositeKey, filter *model.Filter) model.QuerySpec {
	b := &builder{dialect: c.dialect}
	b.write(selectUsers)
	b.write(" WHERE ")
	b.write(c.containsFunc())
	b.write("(name, ")
	b.bind(key.NameFragment)
	b.write(") > 0 AND grade = ")
	b.bind(int(key.Grade))

	if filter != nil {
		b.write(" AND age = ")
		b.bind(int(filter.Age))
		b.write(" AND active = ")
		b.bind(filter.Active)
	}

	b.write(" ORDER BY name, id")
	return b.spec()
}

// ByID composes the single-user lookup.
func (c *Composer) ByID(id uuid.UUID) model.QuerySpec {
	b := &builder{dialect: c.dialect}
	b.write(selectUsers)
	b.write(" WHERE id = ")
	b.bind(c.idValue(id))
	return b.spec()
}

// containsFunc names the dialect's case-sensitive substring position function.
func (c *Composer) containsFunc() string {
	if c.dialect == model.DialectSQLite {
		return "instr"
	}
	return "strpos"
}

// SQLite stores identifiers as canonical text.
func (c *Composer) idValue(id uuid.UUID) any {
	if c.dialect == model.DialectSQLite {
		return id.String()
	}
	return id
}
