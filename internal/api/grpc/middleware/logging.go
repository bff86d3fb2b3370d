package middleware

import (
	"context"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/userdir/internal/logger"
)

// Logging provides interceptors that log gRPC calls and recover from handler panics.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// InterceptorLogger adapts l to the go-grpc-middleware logging interface.
func InterceptorLogger(l *logger.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func (l *Logging) options() []logging.Option {
	return []logging.Option{logging.WithLogOnEvents(logging.FinishCall)}
}

// recoverPanic turns a handler panic into codes.Internal.
func (l *Logging) recoverPanic(p any) error {
	l.logger.Error("gRPC handler panicked", "panic", p)
	return status.Error(codes.Internal, "internal server error")
}

// Unary returns the unary interceptors in chaining order.
func (l *Logging) Unary() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		logging.UnaryServerInterceptor(InterceptorLogger(l.logger), l.options()...),
		recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(l.recoverPanic)),
	}
}

// Stream returns the stream interceptors in chaining order.
func (l *Logging) Stream() []grpc.StreamServerInterceptor {
	return []grpc.StreamServerInterceptor{
		logging.StreamServerInterceptor(InterceptorLogger(l.logger), l.options()...),
		recovery.StreamServerInterceptor(recovery.WithRecoveryHandler(l.recoverPanic)),
	}
}
