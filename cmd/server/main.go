package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"analystDashboard/internal/accounts"
	"analystDashboard/internal/config"
	"analystDashboard/internal/db"
	grpcserver "analystDashboard/internal/grpc"
	"analystDashboard/internal/history"
	"analystDashboard/internal/logging"
	"analystDashboard/repository"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("load .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, cfg.Log)
	slog.SetDefault(logger)
	logger.Info("configuration loaded", "config", cfg.String())

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	if err := cfg.Auth.Validate(); err != nil {
		return fmt.Errorf("auth config: %w", err)
	}

	d, err := db.OpenConfig(cfg.Database)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			logger.Error("close db", "error", err)
		}
	}()
	version, err := db.Version(d)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	logger.Info("database ready", "path", cfg.Database.Path, "driver", cfg.Database.Driver, "schema_version", version)

	users := repository.NewUserRepository(d)
	acct := accounts.NewStore(users, accounts.Options{
		BcryptCost:           cfg.Auth.BcryptCost,
		AdminInitialPassword: cfg.Auth.AdminInitialPassword,
		Logger:               logger,
	})

	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	err = acct.Initialize(initCtx)
	cancelInit()
	if err != nil {
		return fmt.Errorf("initialize credential store: %w", err)
	}

	srv := &grpcserver.Server{
		Accounts:  acct,
		History:   history.NewStore(repository.NewHistoryRepository(d), history.WithLogger(logger)),
		Users:     users,
		JWTSecret: cfg.Auth.JWTSecret,
		TokenTTL:  cfg.Auth.TokenTTL,
		Logger:    logger.With("component", "grpc"),
	}

	shutdown, err := grpcserver.StartGRPC(cfg, srv, logger)
	if err != nil {
		return fmt.Errorf("start grpc: %w", err)
	}
	logger.Info("gRPC server listening", "address", cfg.GRPC.Address)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	return nil
}
