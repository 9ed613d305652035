package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr        string
	Port              string
	GinMode           string
	SessionSecret     string
	StorageDriver     string
	DatabasePath      string
	AdminUsername     string
	AdminPassword     string
	AdminToken        string
	DiscordBotToken   string
	DiscordGuildID    string
	DiscordAPIBaseURL string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "realcloud-dev-secret"
	}

	// memory（默认）把全部状态放在进程内；sqlite 切换到
	// 同一套存储契约的持久化实现
	storageDriver := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_DRIVER")))
	if storageDriver == "" {
		storageDriver = "memory"
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "realcloud.db"
	}

	adminUsername := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	if adminUsername == "" {
		adminUsername = "subh"
	}

	adminPassword := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD"))
	if adminPassword == "" {
		adminPassword = "subh@000"
	}

	adminToken := strings.TrimSpace(os.Getenv("ADMIN_TOKEN"))
	if adminToken == "" {
		adminToken = "admin"
	}

	discordGuildID := strings.TrimSpace(os.Getenv("DISCORD_GUILD_ID"))
	if discordGuildID == "" {
		discordGuildID = "1327590678019964981"
	}

	discordAPIBaseURL := strings.TrimSpace(os.Getenv("DISCORD_API_BASE_URL"))
	if discordAPIBaseURL == "" {
		discordAPIBaseURL = "https://discord.com/api/v10"
	}

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		GinMode:           ginMode,
		SessionSecret:     sessionSecret,
		StorageDriver:     storageDriver,
		DatabasePath:      databasePath,
		AdminUsername:     adminUsername,
		AdminPassword:     adminPassword,
		AdminToken:        adminToken,
		DiscordBotToken:   strings.TrimSpace(os.Getenv("DISCORD_BOT_TOKEN")),
		DiscordGuildID:    discordGuildID,
		DiscordAPIBaseURL: discordAPIBaseURL,
	}
}
