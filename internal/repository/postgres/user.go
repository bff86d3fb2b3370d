package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/userdir/internal/model"
)

var _ model.QueryExecutor = (*UserRepository)(nil)

// querier is the subset of the pool used to run queries.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

type UserRepository struct {
	db querier
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Dialect() model.Dialect {
	return model.DialectPostgres
}

func (r *UserRepository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return classify(err)
	}
	return nil
}

// Execute runs spec on one pooled connection, released when rows are closed.
func (r *UserRepository) Execute(ctx context.Context, spec model.QuerySpec) ([]model.User, error) {
	if spec.Dialect != model.DialectPostgres {
		return nil, fmt.Errorf("postgres executor cannot run %s query", spec.Dialect)
	}

	rows, err := r.db.Query(ctx, spec.Template, spec.Params...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		err := rows.Scan(&user.ID, &user.Name, &user.Age, &user.Grade, &user.Active)
		if err != nil {
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
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, context.DeadlineExceeded), pgconn.Timeout(err):
		return model.NewStoreError(model.StoreTimeout, err)
	case errors.As(err, &pgErr):
		return model.NewStoreError(model.StoreRejected, err)
	default:
		return model.NewStoreError(model.StoreConnectivity, err)
	}
}
