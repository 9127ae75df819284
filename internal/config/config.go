package config

import (
	"os"
	"strconv"

	"turfnest/internal/database"
	"turfnest/internal/messaging"
)

// Config holds the application configuration
type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	// Path of the embedded store backing the owner overlay and the
	// booking mirror.
	LocalStorePath string

	// Optional collaborators; the service degrades without them.
	CacheEnabled bool

	Database database.Config
	NATS     messaging.Config
}

// Load reads the configuration from environment variables
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		LocalStorePath: getEnv("LOCAL_STORE_PATH", "turfnest.db"),
		CacheEnabled:   getEnv("CACHE_ENABLED", "false") == "true",

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "turfnest"),
			Password:           getEnv("DB_PASSWORD", "turfnest123"),
			DBName:             getEnv("DB_NAME", "turfnest"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "turfnest"),
			ClientID:  getEnv("NATS_CLIENT_ID", "turfnest-api"),
		},
	}
}

// getEnv returns the environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable value or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
