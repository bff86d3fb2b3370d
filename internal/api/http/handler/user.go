package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/userdir/internal/logger"
	"github.com/dtroode/userdir/internal/model"
	"github.com/dtroode/userdir/internal/query"
)

// canonicalIDLength is the length of the hyphenated 8-4-4-4-12 form.
const canonicalIDLength = 36

// User serves the lookup and search endpoints.
type User struct {
	directory      model.UserDirectory
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a User handler.
func NewUser(directory model.UserDirectory, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		directory:      directory,
		contextManager: contextManager,
		logger:         logger,
	}
}

// GetUser handles GET /user/{id}.
func (h *User) GetUser(w http.ResponseWriter, r *http.Request) {
	h.countVisit(r)

	id, err := parseID(r.PathValue("id"))
	if err != nil {
		Render(w, ClientError{Message: err.Error()})
		return
	}

	user, err := h.directory.Lookup(r.Context(), id)
	if err != nil {
		Render(w, outcomeFromError(err, "user not found"))
		return
	}

	Render(w, SingleRecord{User: user})
}

// SearchUsers handles GET /users/{key}?age=&active=.
func (h *User) SearchUsers(w http.ResponseWriter, r *http.Request) {
	h.countVisit(r)

	key, keyErr := query.DecodeCompositeKey(r.PathValue("key"))
	filter, filterErr := query.ExtractFilter(r.URL.Query())
	if keyErr != nil {
		Render(w, outcomeFromError(keyErr, ""))
		return
	}
	if filterErr != nil {
		Render(w, outcomeFromError(filterErr, ""))
		return
	}

	users, err := h.directory.Search(r.Context(), key, filter)
	if err != nil {
		Render(w, outcomeFromError(err, ""))
		return
	}

	Render(w, Collection{Users: users})
}

func (h *User) countVisit(r *http.Request) {
	counter, ok := h.contextManager.GetCounterFromContext(r.Context())
	if !ok {
		return
	}
	visits := counter.Increment()
	h.logger.Debug("User handler: visit", "path", r.URL.Path, "visits", visits)
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || len(raw) != canonicalIDLength {
		return uuid.Nil, fmt.Errorf("invalid user id %q", raw)
	}
	return id, nil
}
