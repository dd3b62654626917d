package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"loyalty-server/internal/bootstrap"
	"loyalty-server/internal/clients/kafka"
	"loyalty-server/internal/config"
	"loyalty-server/internal/events/consumers"
	"loyalty-server/internal/observability"
)

func main() {
	logger := observability.NewLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatal("the scan consumer needs KAFKA_BROKERS")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info(ctx, "Starting Kafka scan consumer...")

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	kafkaConsumer := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.ScansTopic,
		GroupID: cfg.Kafka.ConsumerGroup,
	}, logger)
	defer kafkaConsumer.Close()

	scanConsumer := consumers.NewScanConsumer(kafkaConsumer, deps.Analytics, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info(ctx, "Shutting down scan consumer...")
		cancel()
	}()

	if err := scanConsumer.Start(ctx); err != nil && ctx.Err() == nil {
		logger.Error(ctx, "scan consumer stopped with error", err)
		os.Exit(1)
	}
	logger.Info(context.Background(), "Scan consumer stopped")
}
