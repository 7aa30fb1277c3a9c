package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type SlackConfig struct {
	BotToken        string
	SigningSecret   string
	AlertWebhookURL string
}

// IsConfigured returns true if all required Slack configuration is present
func (c SlackConfig) IsConfigured() bool {
	return c.BotToken != "" &&
		c.SigningSecret != ""
	// Note: AlertWebhookURL is optional
}

type BackstageConfig struct {
	BaseURL  string
	APIToken string
}

// IsConfigured returns true if all required Backstage configuration is present
func (c BackstageConfig) IsConfigured() bool {
	return c.BaseURL != ""
	// Note: APIToken is optional, catalogs without auth accept anonymous reads
}

type AppConfig struct {
	// Core configuration
	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	ServerLogsURL      string
	UseStrictConfig    bool // If true, error when any integration is not fully configured

	// Integration configurations (grouped)
	SlackConfig     SlackConfig
	BackstageConfig BackstageConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	config := &AppConfig{
		// Core configuration
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		ServerLogsURL:      getEnvWithDefault("SERVER_LOGS_URL", ""),
		UseStrictConfig:    getEnvWithDefault("USE_STRICT_CONFIG", "true") == "true",

		// Slack configuration
		SlackConfig: SlackConfig{
			BotToken:        os.Getenv("SLACK_BOT_TOKEN"),
			SigningSecret:   os.Getenv("SLACK_SIGNING_SECRET"),
			AlertWebhookURL: os.Getenv("SLACK_ALERT_WEBHOOK_URL"),
		},

		// Backstage configuration
		BackstageConfig: BackstageConfig{
			BaseURL:  os.Getenv("BACKSTAGE_BASE_URL"),
			APIToken: os.Getenv("BACKSTAGE_API_TOKEN"),
		},
	}

	// Log which integrations are configured
	if config.SlackConfig.IsConfigured() {
		log.Printf("✅ Slack integration configured")
	} else {
		log.Printf("⚠️ Slack integration not configured - Slack features will be disabled")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("slack integration is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.BackstageConfig.IsConfigured() {
		log.Printf("✅ Backstage catalog configured")
	} else {
		log.Printf("⚠️ Backstage catalog not configured - catalog lookups will be disabled")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("backstage catalog is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	return config, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
