package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/realcloud/internal/config"
	"github.com/realcloud/internal/handler"
	"github.com/realcloud/internal/router"
	"github.com/realcloud/internal/service"
	"github.com/realcloud/internal/store"
)

func main() {
	// .env 不存在时静默跳过，线上直接用环境变量
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	dataStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	credentials, err := service.NewStaticCredentialVerifier(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("failed to initialize admin credentials: %v", err)
	}

	guilds := service.NewGuildService(cfg.DiscordBotToken, cfg.DiscordAPIBaseURL)

	api := handler.NewAPI(dataStore, guilds, credentials, cfg.AdminToken, cfg.DiscordGuildID)
	r := router.SetupRouter(api, cfg.SessionSecret)

	log.Printf("listening on %s (storage driver: %s)", cfg.ListenAddr, cfg.StorageDriver)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func openStore(cfg config.AppConfig) (store.Store, error) {
	switch cfg.StorageDriver {
	case "sqlite":
		return store.OpenSQLite(cfg.DatabasePath)
	default:
		return store.NewMemoryStore(), nil
	}
}
