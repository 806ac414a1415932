package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"goldquote-service/internal/bootstrap"
	"goldquote-service/internal/infrastructure/mcpserver"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	log := bootstrap.ProvideLogger()
	defer func() { _ = log.Sync() }()

	app, err := bootstrap.Build(bootstrap.ProvideConfig(), log)
	if err != nil {
		log.Fatal("bootstrap", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := mcpserver.New(app.Registry, log)
	if err := mcpserver.ServeStdio(ctx, srv, log); err != nil {
		log.Error("mcp server exited", zap.Error(err))
		os.Exit(1)
	}
}
