package main

import (
	"nexus-pipeline/internal/api"
	"nexus-pipeline/internal/api/handler"
	"nexus-pipeline/internal/config"
	"nexus-pipeline/internal/logging"
	"nexus-pipeline/internal/store"
	"nexus-pipeline/pkg/router"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title Nexus Pipeline API
// @version 1.0
// @description Polymorphic data processors, streams, and staged pipelines.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()
	cfg := config.LoadOrDefault()

	log, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDev})
	if err != nil {
		log = logging.NewDefault()
	}
	defer log.Sync()
	handler.Log = log

	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatal("failed to open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}

	r := router.New(log)
	api.RegisterRoutes(r)

	if err := r.Start(cfg.Addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
