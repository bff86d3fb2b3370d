package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"

	"github.com/dtroode/userdir/internal/model"
)

var _ model.QueryExecutor = (*UserRepository)(nil)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Dialect() model.Dialect {
	return model.DialectSQLite
}

func (r *UserRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return classify(err)
	}
	return nil
}

// Execute runs spec on one pooled connection, released when rows are closed.
func (r *UserRepository) Execute(ctx context.Context, spec model.QuerySpec) ([]model.User, error) {
	if spec.Dialect != model.DialectSQLite {
		return nil, fmt.Errorf("sqlite executor cannot run %s query", spec.Dialect)
	}

	rows, err := r.db.QueryContext(ctx, spec.Template, spec.Params...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Age, &user.Grade, &user.Active); err != nil {
			return nil, classify(err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return users, nil
}

func classify(err error) error {
	var liteErr *sqlite.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return model.NewStoreError(model.StoreTimeout, err)
	case errors.As(err, &liteErr):
		return model.NewStoreError(model.StoreRejected, err)
	default:
		return model.NewStoreError(model.StoreConnectivity, err)
	}
}
