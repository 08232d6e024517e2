package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/shareit/config"
	"github.com/Domenick1991/shareit/internal/bootstrap"
	"github.com/Domenick1991/shareit/internal/cache"
	"github.com/Domenick1991/shareit/internal/kafka"
	"github.com/Domenick1991/shareit/internal/metrics"
	"github.com/Domenick1991/shareit/internal/repository"
	"github.com/Domenick1991/shareit/internal/service/booking"
	"github.com/Domenick1991/shareit/internal/service/item"
	"github.com/Domenick1991/shareit/internal/service/request"
	"github.com/Domenick1991/shareit/internal/service/user"
)

func main() {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	db, err := repository.NewGorm(pool)
	if err != nil {
		log.Fatalf("open gorm: %v", err)
	}
	if cfg.Database.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	users := repository.NewUserRepository(db)
	items := repository.NewItemRepository(db)
	bookings := repository.NewBookingRepository(db)
	comments := repository.NewCommentRepository(db)
	requests := repository.NewRequestRepository(db)

	var (
		itemOpts []item.ItemServiceOption
		userOpts []user.UserServiceOption
	)
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis)
		itemOpts = append(itemOpts, item.WithCache(redisCache))
		userOpts = append(userOpts, user.WithItemCache(items, redisCache))
	}

	var producer booking.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		p := kafka.NewProducer(cfg.Kafka.Brokers)
		defer p.Close()
		producer = p
	}

	if cfg.Metrics.Enabled {
		metrics.Register()
		go metrics.Serve(ctx, cfg.Metrics.Address)
	}

	engine := bootstrap.NewServerEngine(cfg.Server, bootstrap.Services{
		Users:    user.NewUserService(users, userOpts...),
		Items:    item.NewItemService(items, users, bookings, comments, requests, itemOpts...),
		Bookings: booking.NewBookingService(bookings, items, users, producer, cfg.Kafka.BookingEventsTopic),
		Requests: request.NewRequestService(requests, items, users),
	})

	log.Printf("server listening on %s", cfg.Server.Address)
	if err := bootstrap.Run(ctx, cfg.Server.Address, engine); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
