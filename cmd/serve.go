package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/reflection"

	grpchandler "github.com/dtroode/userdir/internal/api/grpc/handler"
	grpcrouter "github.com/dtroode/userdir/internal/api/grpc/router"
	grpcserver "github.com/dtroode/userdir/internal/api/grpc/server"
	httpctx "github.com/dtroode/userdir/internal/api/http/context"
	httprouter "github.com/dtroode/userdir/internal/api/http/router"
	httpserver "github.com/dtroode/userdir/internal/api/http/server"
	"github.com/dtroode/userdir/internal/config"
	"github.com/dtroode/userdir/internal/logger"
	"github.com/dtroode/userdir/internal/model"
	"github.com/dtroode/userdir/internal/server"
	"github.com/dtroode/userdir/internal/service"
	"github.com/dtroode/userdir/internal/visitor"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP lookup server and the gRPC health endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(parent context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	logAppVersion(os.Stdout)

	executor, closeStore, err := openStore(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err, "driver", cfg.Database.Driver)
	}
	defer closeStore()

	directory := service.NewDirectory(executor, logger)
	counter := visitor.NewCounter()
	ctxMgr := httpctx.NewManager()

	servers := []model.Server{
		httpserver.NewHTTPServer(
			httprouter.New(directory, directory, counter, ctxMgr, logger).Register(),
			fmt.Sprintf(":%s", cfg.HTTP.Port),
		),
	}

	if cfg.GRPC.Enabled {
		health := grpchandler.NewHealth(directory, cfg.Health.Interval, logger)
		go health.Run(ctx)

		s := grpcrouter.New(health, logger).Register()
		reflection.Register(s)
		servers = append(servers, grpcserver.NewGRPCServer(s, fmt.Sprintf(":%s", cfg.GRPC.Port)))
	}

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete", "visits", counter.Load())
	return nil
}
