package router

import (
	"net/http"

	"github.com/dtroode/userdir/internal/api/http/handler"
	"github.com/dtroode/userdir/internal/api/http/middleware"
	"github.com/dtroode/userdir/internal/logger"
	"github.com/dtroode/userdir/internal/model"
)

// Router wires the user directory onto HTTP routes.
type Router struct {
	directory      model.UserDirectory
	store          model.Pinger
	counter        model.VisitorCounter
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	directory model.UserDirectory,
	store model.Pinger,
	counter model.VisitorCounter,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		directory:      directory,
		store:          store,
		counter:        counter,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the mux and wraps it with request logging and counter injection.
func (r *Router) Register() http.Handler {
	mux := http.NewServeMux()

	userHandler := handler.NewUser(r.directory, r.contextManager, r.logger)
	healthHandler := handler.NewHealth(r.store, r.logger)

	mux.HandleFunc("GET /user/{id}", userHandler.GetUser)
	mux.HandleFunc("GET /users/{key}", userHandler.SearchUsers)
	mux.HandleFunc("GET /healthz", healthHandler.HandleHealthz)
	mux.Handle("/", handler.NewFallback(userHandler))

	logging := middleware.NewLogging(r.logger)
	visitor := middleware.NewVisitor(r.counter, r.contextManager)

	return logging.Handle(visitor.Handle(mux))
}
