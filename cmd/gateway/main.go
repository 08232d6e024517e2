package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/shareit/config"
	"github.com/Domenick1991/shareit/internal/bootstrap"
	"github.com/Domenick1991/shareit/internal/gateway"
	"github.com/Domenick1991/shareit/internal/metrics"
)

func main() {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Enabled {
		metrics.Register()
		go metrics.Serve(ctx, cfg.Metrics.Address)
	}

	engine := bootstrap.NewGatewayEngine(gateway.NewClient(cfg.Gateway))

	log.Printf("gateway listening on %s, forwarding to %s", cfg.Gateway.Address, cfg.Gateway.ServerURL)
	if err := bootstrap.Run(ctx, cfg.Gateway.Address, engine); err != nil {
		log.Fatalf("gateway error: %v", err)
	}
}
