package main

import (
	"context"
	"growth-server/internal/bootstrap"
	"growth-server/internal/config"
	"growth-server/internal/observability"
	"growth-server/internal/server"
	"log"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := srv.Start(runCtx); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}

	if err := srv.WaitForShutdown(runCtx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
