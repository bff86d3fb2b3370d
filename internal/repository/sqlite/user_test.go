package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/userdir/internal/model"
	"github.com/dtroode/userdir/internal/query"
)

var columns = []string{"id", "name", "age", "grade", "active"}

func newMock(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(db), mock
}

func TestUserRepository_Execute_Mock(t *testing.T) {
	alexID := uuid.MustParse("74d96050-8d8b-45e5-ac48-40c35208841e")
	composer := query.NewComposer(model.DialectSQLite)

	t.Run("search without filter", func(t *testing.T) {
		repo, mock := newMock(t)
		spec := composer.Search(model.CompositeKey{NameFragment: "Alex", Grade: 10}, nil)

		mock.ExpectQuery(spec.Template).
			WithArgs("Alex", 10).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(alexID.String(), "Alex", 36, 10, true)).
			RowsWillBeClosed()

		got, err := repo.Execute(context.Background(), spec)
		require.NoError(t, err)
		assert.Equal(t, []model.User{{ID: alexID, Name: "Alex", Age: 36, Grade: 10, Active: true}}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("search with filter binds four params", func(t *testing.T) {
		repo, mock := newMock(t)
		spec := composer.Search(model.CompositeKey{NameFragment: "Alex", Grade: 10}, &model.Filter{Age: 40, Active: true})

		mock.ExpectQuery(spec.Template).
			WithArgs("Alex", 10, 40, true).
			WillReturnRows(sqlmock.NewRows(columns))

		got, err := repo.Execute(context.Background(), spec)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lookup by id", func(t *testing.T) {
		repo, mock := newMock(t)
		spec := composer.ByID(alexID)

		mock.ExpectQuery(spec.Template).
			WithArgs(alexID.String()).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(alexID.String(), "Alex", 36, 10, 1))

		got, err := repo.Execute(context.Background(), spec)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].Active)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("connection failure", func(t *testing.T) {
		repo, mock := newMock(t)
		spec := composer.ByID(alexID)

		mock.ExpectQuery(spec.Template).WithArgs(alexID.String()).WillReturnError(errors.New("disk I/O error"))

		_, err := repo.Execute(context.Background(), spec)
		var storeErr *model.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, model.StoreConnectivity, storeErr.Kind)
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		repo, mock := newMock(t)
		spec := composer.ByID(alexID)

		mock.ExpectQuery(spec.Template).WithArgs(alexID.String()).WillReturnError(context.DeadlineExceeded)

		_, err := repo.Execute(context.Background(), spec)
		var storeErr *model.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, model.StoreTimeout, storeErr.Kind)
	})

	t.Run("row error closes rows", func(t *testing.T) {
		repo, mock := newMock(t)
		spec := composer.Search(model.CompositeKey{NameFragment: "A", Grade: 1}, nil)

		mock.ExpectQuery(spec.Template).
			WithArgs("A", 1).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(alexID.String(), "Alex", 36, 1, true).
				RowError(0, errors.New("corrupt page"))).
			RowsWillBeClosed()

		_, err := repo.Execute(context.Background(), spec)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign dialect is refused before querying", func(t *testing.T) {
		repo, mock := newMock(t)
		spec := query.NewComposer(model.DialectPostgres).ByID(alexID)

		_, err := repo.Execute(context.Background(), spec)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
