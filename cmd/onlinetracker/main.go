package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"onlinetracker/internal/config"
	"onlinetracker/internal/logger"
	"onlinetracker/internal/routing"
	"onlinetracker/pkg/generator"
	"onlinetracker/pkg/middleware"
	"onlinetracker/pkg/session"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()
	logger := logger.Load(cfg.LogLevel)

	registry := session.NewInMemoryRegistry(
		session.WithTTL(cfg.SessionTTL),
		session.WithIDSource(generator.FromMode(cfg.IDMode)),
	)

	sweeper := session.NewSweeper(registry, cfg.SweepPeriod, logger)
	sweeper.Start()

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Panic(logger))
	api.Use(middleware.CORS)

	routing.InitRoutes(api, registry, logger)
	routing.ServeLandingPage(r)

	logger.Info("api endpoints",
		"count", "GET /api/online/count",
		"users", "GET /api/online/users",
		"login", "POST /api/online/login",
		"heartbeat", "POST /api/online/heartbeat",
		"logout", "POST /api/online/logout",
		"validate", "POST /api/online/validate",
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := routing.StartServer(ctx, r, logger, cfg.Addr)

	// joined before the registry goes away with the process
	sweeper.Stop()

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
