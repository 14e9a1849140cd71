package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Issuer claim for session tokens (default: rollcall)

	KeyFile      string        // Optional: path to PKCS8 PEM Ed25519 session key; empty means ephemeral
	SessionTTL   time.Duration // Session token lifetime (default: 12h)
	DatabaseFile string        // Path to SQLite database file (default: ./rollcall.db)
	PepperFile   string        // Path to file containing pepper for password hashing (default: ./pepper)
	PrefsFile    string        // Path to the local preference file (default: ./prefs.json)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Issuer:               getEnvOrDefault("ROLLCALL_ISSUER", "rollcall"),
		KeyFile:              os.Getenv("ROLLCALL_KEY_FILE"),
		SessionTTL:           getEnvDurationOrDefault("ROLLCALL_SESSION_TTL", 12*time.Hour),
		DatabaseFile:         getEnvOrDefault("ROLLCALL_DATABASE_FILE", "rollcall.db"),
		PepperFile:           getEnvOrDefault("ROLLCALL_PEPPER_FILE", "pepper"),
		PrefsFile:            getEnvOrDefault("ROLLCALL_PREFS_FILE", "prefs.json"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
