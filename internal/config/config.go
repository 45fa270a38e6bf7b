package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig aggregates runtime configuration. Everything is injected
// through environment variables with sane defaults for local runs.
type AppConfig struct {
	HTTPAddr string
	DBPath   string

	RedisAddr string
	RedisDB   int

	// RabbitMQ order-event publishing; empty URL disables it.
	AmqpURL            string
	OrderEventExchange string

	// SMTP transport for customer emails; empty host means email is not
	// configured and dispatch falls through to the other channels.
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	// NotificationLog is the append-only fallback record for guest
	// notifications.
	NotificationLog string

	SessionTTL time.Duration
	CartTTL    time.Duration
}

// Load reads and validates configuration, falling back to defaults.
func Load() (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DBPath:             getEnv("DB_PATH", "storefront.db"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:            0,
		AmqpURL:            getEnv("RABBITMQ_URL", ""),
		OrderEventExchange: getEnv("ORDER_EVENT_EXCHANGE", "order.exchange"),
		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           587,
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		MailFrom:           getEnv("MAIL_FROM", "noreply@storefront.local"),
		NotificationLog:    getEnv("NOTIFICATION_LOG", "notifications.log"),
		SessionTTL:         24 * time.Hour,
		CartTTL:            24 * time.Hour,
	}

	redisDB, err := getEnvInt("REDIS_DB", cfg.RedisDB)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisDB = redisDB

	smtpPort, err := getEnvInt("SMTP_PORT", cfg.SMTPPort)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	cfg.SMTPPort = smtpPort

	sessionTTLHour, err := getEnvInt("SESSION_TTL_HOUR", int(cfg.SessionTTL.Hours()))
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid SESSION_TTL_HOUR: %w", err)
	}
	if sessionTTLHour <= 0 {
		return AppConfig{}, fmt.Errorf("SESSION_TTL_HOUR must be > 0")
	}
	cfg.SessionTTL = time.Duration(sessionTTLHour) * time.Hour

	cartTTLHour, err := getEnvInt("CART_TTL_HOUR", int(cfg.CartTTL.Hours()))
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid CART_TTL_HOUR: %w", err)
	}
	if cartTTLHour <= 0 {
		return AppConfig{}, fmt.Errorf("CART_TTL_HOUR must be > 0")
	}
	cfg.CartTTL = time.Duration(cartTTLHour) * time.Hour

	if cfg.DBPath == "" {
		return AppConfig{}, fmt.Errorf("DB_PATH must not be empty")
	}
	if cfg.NotificationLog == "" {
		return AppConfig{}, fmt.Errorf("NOTIFICATION_LOG must not be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
