package cmd

import (
	"fmt"
	"log/slog"
	"strings"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RabbitMQURL         string
	DeliveryExchange    string
	DeliveryRoutingKey  string
	OrderEventsExchange string

	OutboxSchedule  string
	OutboxBatchSize int

	LogLevel string
}

// DSN returns the PostgreSQL connection string used by GORM and migrations.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel parses LogLevel; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
