package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wichananm65/user-api/internal/infrastructure/config"
	"github.com/wichananm65/user-api/internal/infrastructure/database/inmemory"
	"github.com/wichananm65/user-api/internal/infrastructure/logger"
	httpHandler "github.com/wichananm65/user-api/internal/interface/http/handler"
	"github.com/wichananm65/user-api/internal/interface/http/router"
	"github.com/wichananm65/user-api/internal/interface/presenter"
	"github.com/wichananm65/user-api/internal/usecase"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Development: cfg.LogDev})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	userRepo := inmemory.NewUserRepository()
	validator := usecase.NewValidator(cfg.MinimumAge)
	userUsecase := usecase.NewUserService(userRepo, validator, log)
	userPresenter := presenter.NewUserPresenter(router.UsersPath)
	userHandler := httpHandler.NewUserHandler(userUsecase, userPresenter, log)

	app := router.New(userHandler, log)

	log.Info("starting server", zap.String("addr", cfg.Addr), zap.Int("minimumAge", cfg.MinimumAge))
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
