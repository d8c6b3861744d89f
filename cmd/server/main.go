package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hongminglow/shift-assign/internal/config"
	"github.com/hongminglow/shift-assign/internal/logging"
	"github.com/hongminglow/shift-assign/internal/server"
	"github.com/hongminglow/shift-assign/internal/storage"
	"github.com/hongminglow/shift-assign/internal/storage/postgres"
	"github.com/hongminglow/shift-assign/internal/storage/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if envErr != nil {
		slog.Info("no .env file found; relying on existing environment")
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("init database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	srv := server.New(cfg, store)

	go func() {
		slog.Info("shift-assign gateway listening", "addr", cfg.HTTPAddress())
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		slog.Error("graceful shutdown error", "error", err)
	}
}

func openStore(ctx context.Context, cfg config.Config) (storage.MemberRepository, error) {
	driver, dsn, err := cfg.Database()
	if err != nil {
		return nil, err
	}
	if driver == config.DriverPostgres {
		store, err := postgres.NewMemberStore(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	store, err := sqlite.NewMemberStore(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return store, nil
}
