package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/shareit/api"
	"github.com/Domenick1991/shareit/config"
	"github.com/Domenick1991/shareit/internal/gateway"
	"github.com/Domenick1991/shareit/internal/metrics"
	"github.com/Domenick1991/shareit/internal/service/booking"
	"github.com/Domenick1991/shareit/internal/service/item"
	"github.com/Domenick1991/shareit/internal/service/request"
	"github.com/Domenick1991/shareit/internal/service/user"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Services are the use cases the server tier exposes over HTTP.
type Services struct {
	Users    user.UserUseCase
	Items    item.ItemUseCase
	Bookings booking.BookingUseCase
	Requests request.RequestUseCase
}

// NewServerEngine routes the server tier API. When cfg.SwaggerDir is set
// the OpenAPI document is served from it and browsable under /docs/.
func NewServerEngine(cfg config.ServerConfig, svc Services) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), metrics.Middleware("server"))

	api.NewUserHandler(svc.Users).Register(engine.Group("/users"))
	api.NewItemHandler(svc.Items).Register(engine.Group("/items"))
	api.NewBookingHandler(svc.Bookings).Register(engine.Group("/bookings"))
	api.NewRequestHandler(svc.Requests).Register(engine.Group("/requests"))

	if cfg.SwaggerDir != "" {
		engine.Static("/swagger", cfg.SwaggerDir)
		engine.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/openapi.yaml"))))
	}
	return engine
}

func NewGatewayEngine(server gateway.Forwarder) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), metrics.Middleware("gateway"))
	gateway.NewHandler(server).Register(engine)
	return engine
}

// Run serves handler on addr and blocks until ctx is canceled or the
// server fails.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
