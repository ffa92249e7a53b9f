package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string

	// Outbound notification endpoint.
	NotifyAPIURL    string
	NotifyAPIToken  string
	NotifyChannelID string

	SupportEmail string

	// Local audit log sink.
	AuditLogPath  string
	AuditLogMaxMB int

	// Optional intake-event fan-out.
	RabbitMQURL     string
	RabbitMQQueue   string
	ChannelPoolSize int
	NumWorkers      int
}

func LoadConfig() *Config {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		NotifyAPIURL:    getEnv("NOTIFY_API_URL", "https://chat.example.invalid/api/messages"),
		NotifyAPIToken:  getEnv("NOTIFY_API_TOKEN", ""),
		NotifyChannelID: getEnv("NOTIFY_CHANNEL_ID", ""),
		SupportEmail:    getEnv("SUPPORT_EMAIL", "support@alquds-relief.org"),
		AuditLogPath:    getEnv("AUDIT_LOG_PATH", "logs/intake.log"),
		AuditLogMaxMB:   getEnvAsInt("AUDIT_LOG_MAX_MB", 10),
		RabbitMQURL:     getEnv("RABBITMQ_URL", ""),
		RabbitMQQueue:   getEnv("RABBITMQ_QUEUE", "intake_events"),
		ChannelPoolSize: getEnvAsInt("CHANNEL_POOL_SIZE", 10),
		NumWorkers:      getEnvAsInt("NUM_WORKERS", 4),
	}
}

// Validate reports missing required secrets. Absence is a startup-time
// fatal condition, never a per-request error.
func (c *Config) Validate() error {
	var missing []string
	if c.NotifyAPIToken == "" {
		missing = append(missing, "NOTIFY_API_TOKEN")
	}
	if c.NotifyChannelID == "" {
		missing = append(missing, "NOTIFY_CHANNEL_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
