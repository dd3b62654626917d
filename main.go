package main

import (
	"context"
	"log"

	"loyalty-server/internal/bootstrap"
	"loyalty-server/internal/config"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/server"
)

func main() {
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Fatal(ctx, "failed to shutdown server", err)
	}
}
