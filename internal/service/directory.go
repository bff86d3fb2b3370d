package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/userdir/internal/logger"
	"github.com/dtroode/userdir/internal/model"
	"github.com/dtroode/userdir/internal/query"
)

var _ model.UserDirectory = (*Directory)(nil)

// Directory answers read-only user lookups by composing one query per call.
type Directory struct {
	executor model.QueryExecutor
	composer *query.Composer
	logger   *logger.Logger
}

func NewDirectory(executor model.QueryExecutor, logger *logger.Logger) *Directory {
	return &Directory{
		executor: executor,
		composer: query.NewComposer(executor.Dialect()),
		logger:   logger,
	}
}

// Lookup returns the user with the given identifier or model.ErrNotFound.
func (s *Directory) Lookup(ctx context.Context, id uuid.UUID) (model.User, error) {
	users, err := s.executor.Execute(ctx, s.composer.ByID(id))
	if err != nil {
		s.logger.Error("Directory service: failed to get user by id",
			"id", id.String(),
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if len(users) == 0 {
		s.logger.Debug("Directory service: user not found", "id", id.String())
		return model.User{}, model.ErrNotFound
	}

	return users[0], nil
}

// Search returns users whose name contains key.NameFragment in grade key.Grade,
// narrowed by filter when it is not nil. An empty result is not an error.
func (s *Directory) Search(ctx context.Context, key model.CompositeKey, filter *model.Filter) ([]model.User, error) {
	users, err := s.executor.Execute(ctx, s.composer.Search(key, filter))
	if err != nil {
		s.logger.Error("Directory service: failed to search users",
			"name_fragment", key.NameFragment,
			"grade", key.Grade,
			"filtered", filter != nil,
			"error", err.Error())
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	s.logger.Debug("Directory service: search completed",
		"name_fragment", key.NameFragment,
		"grade", key.Grade,
		"matches", len(users))

	return users, nil
}

// Ping reports whether the backing store answers.
func (s *Directory) Ping(ctx context.Context) error {
	return s.executor.Ping(ctx)
}
