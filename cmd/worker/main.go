package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/shareit/config"
	"github.com/Domenick1991/shareit/internal/kafka"
	"github.com/Domenick1991/shareit/internal/notify"
)

func main() {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.BookingEventsTopic == "" {
		log.Fatalf("kafka brokers and booking_events_topic are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingEventsTopic)
	defer consumer.Close()

	sender := notify.NewSender()

	log.Printf("worker consuming %s", cfg.Kafka.BookingEventsTopic)
	if err := consumer.Consume(ctx, kafka.BookingEventHandler(sender.Send)); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("consumer stopped: %v", err)
	}
	log.Println("worker stopped")
}
