package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Database    DatabaseConfig
	Adapter     AdapterConfig
	Redis       RedisConfig
	API         APIConfig
	LogLevel    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// AdapterConfig selects and configures the outbound publish channel
type AdapterConfig struct {
	Transport    string // "webhook" or "kafka"
	WebhookURL   string
	WebhookToken string
	KafkaBrokers []string
	KafkaTopic   string
}

type RedisConfig struct {
	Addr              string
	StoreInfoCacheTTL time.Duration
}

type APIConfig struct {
	KeyHash string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("ADAPTER_TRANSPORT", "webhook")
	viper.SetDefault("KAFKA_TOPIC", "omniful.events")
	viper.SetDefault("STORE_INFO_CACHE_TTL", "300s")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cacheTTL, err := time.ParseDuration(getEnvOrViper("STORE_INFO_CACHE_TTL", "300s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_INFO_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "omniful_core"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Adapter: AdapterConfig{
			Transport:    getEnvOrViper("ADAPTER_TRANSPORT", "webhook"),
			WebhookURL:   getEnvOrViper("WEBHOOK_URL", ""),
			WebhookToken: getEnvOrViper("WEBHOOK_TOKEN", ""),
			KafkaBrokers: splitList(getEnvOrViper("KAFKA_BROKERS", "")),
			KafkaTopic:   getEnvOrViper("KAFKA_TOPIC", "omniful.events"),
		},
		Redis: RedisConfig{
			Addr:              getEnvOrViper("REDIS_ADDR", ""),
			StoreInfoCacheTTL: cacheTTL,
		},
		API: APIConfig{
			KeyHash: getEnvOrViper("API_KEY_HASH", ""),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	switch cfg.Adapter.Transport {
	case "webhook":
		if cfg.Adapter.WebhookURL == "" {
			return nil, fmt.Errorf("WEBHOOK_URL is required when ADAPTER_TRANSPORT=webhook")
		}
	case "kafka":
		if len(cfg.Adapter.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("KAFKA_BROKERS is required when ADAPTER_TRANSPORT=kafka")
		}
	default:
		return nil, fmt.Errorf("unknown ADAPTER_TRANSPORT %q", cfg.Adapter.Transport)
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
