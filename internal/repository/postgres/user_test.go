package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/userdir/internal/model"
	"github.com/dtroode/userdir/internal/query"
)

type fakeRows struct {
	users   []model.User
	pos     int
	err     error
	scanErr error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.users) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.users[r.pos-1]
	*dest[0].(*uuid.UUID) = u.ID
	*dest[1].(*string) = u.Name
	*dest[2].(*uint8) = u.Age
	*dest[3].(*uint8) = u.Grade
	*dest[4].(*bool) = u.Active
	return nil
}

type fakeQuerier struct {
	rows    *fakeRows
	err     error
	gotSQL  string
	gotArgs []any
	calls   int
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.calls++
	q.gotSQL, q.gotArgs = sql, args
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func (q *fakeQuerier) Ping(context.Context) error { return q.err }

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
	assert.Equal(t, model.DialectPostgres, repo.Dialect())
}

func TestUserRepository_Execute(t *testing.T) {
	alex := model.User{ID: uuid.MustParse("74d96050-8d8b-45e5-ac48-40c35208841e"), Name: "Alex", Age: 36, Grade: 10, Active: true}
	spec := query.NewComposer(model.DialectPostgres).Search(model.CompositeKey{NameFragment: "Alex", Grade: 10}, nil)

	t.Run("returns scanned users and closes rows", func(t *testing.T) {
		rows := &fakeRows{users: []model.User{alex}}
		q := &fakeQuerier{rows: rows}
		repo := &UserRepository{db: q}

		got, err := repo.Execute(context.Background(), spec)
		require.NoError(t, err)
		assert.Equal(t, []model.User{alex}, got)
		assert.Equal(t, spec.Template, q.gotSQL)
		assert.Equal(t, spec.Params, q.gotArgs)
		assert.Equal(t, 1, q.calls)
		assert.True(t, rows.closed)
	})

	t.Run("empty result", func(t *testing.T) {
		repo := &UserRepository{db: &fakeQuerier{rows: &fakeRows{}}}

		got, err := repo.Execute(context.Background(), spec)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("query rejected by store", func(t *testing.T) {
		repo := &UserRepository{db: &fakeQuerier{err: &pgconn.PgError{Code: "42601"}}}

		_, err := repo.Execute(context.Background(), spec)
		var storeErr *model.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, model.StoreRejected, storeErr.Kind)
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		repo := &UserRepository{db: &fakeQuerier{err: context.DeadlineExceeded}}

		_, err := repo.Execute(context.Background(), spec)
		var storeErr *model.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, model.StoreTimeout, storeErr.Kind)
	})

	t.Run("connection failure", func(t *testing.T) {
		repo := &UserRepository{db: &fakeQuerier{err: errors.New("dial tcp: connection refused")}}

		_, err := repo.Execute(context.Background(), spec)
		var storeErr *model.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, model.StoreConnectivity, storeErr.Kind)
	})

	t.Run("scan failure still closes rows", func(t *testing.T) {
		rows := &fakeRows{users: []model.User{alex}, scanErr: errors.New("bad column")}
		repo := &UserRepository{db: &fakeQuerier{rows: rows}}

		_, err := repo.Execute(context.Background(), spec)
		require.Error(t, err)
		assert.True(t, rows.closed)
	})

	t.Run("iteration error", func(t *testing.T) {
		rows := &fakeRows{err: errors.New("conn reset")}
		repo := &UserRepository{db: &fakeQuerier{rows: rows}}

		_, err := repo.Execute(context.Background(), spec)
		var storeErr *model.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.True(t, rows.closed)
	})

	t.Run("foreign dialect", func(t *testing.T) {
		q := &fakeQuerier{rows: &fakeRows{}}
		repo := &UserRepository{db: q}
		lite := query.NewComposer(model.DialectSQLite).Search(model.CompositeKey{NameFragment: "A", Grade: 1}, nil)

		_, err := repo.Execute(context.Background(), lite)
		require.Error(t, err)
		assert.Zero(t, q.calls)
	})
}
