package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/wichananm65/shoe-shop-backend/internal/format"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr             string
	DatabaseURL      string
	JWTSecret        string
	RecencyWindow    time.Duration
	LogFilePath      string
	LogLevel         string
	AllowResetShoes  bool
	AllowSignUp      bool
	CORSAllowOrigins string
}

// Load reads a .env file when present and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:             getEnvString("SHOE_SHOP_ADDR", ":8080"),
		DatabaseURL:      getEnvString("DATABASE_URL", ""),
		JWTSecret:        getEnvString("JWT_SECRET", ""),
		RecencyWindow:    getEnvDuration("RECENCY_WINDOW", format.DefaultRecencyWindow),
		LogFilePath:      getEnvString("LOG_FILE_PATH", ""),
		LogLevel:         getEnvString("LOG_LEVEL", "info"),
		AllowResetShoes:  getEnvString("ALLOW_RESET_SHOES", "") == "1",
		AllowSignUp:      getEnvString("ALLOW_SIGN_UP", "") == "1",
		CORSAllowOrigins: getEnvString("CORS_ALLOW_ORIGINS", "*"),
	}
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvDuration accepts Go durations ("720h") or a plain number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d > 0 {
			return d
		}
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
