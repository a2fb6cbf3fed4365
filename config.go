package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robalobadob/hangman/internal/httpserver"
)

// config is the process configuration resolved from the environment.
type config struct {
	Port         string
	LogLevel     string
	DatabasePath string // "off" disables the results archive
	HTTP         httpserver.Config
}

// loadConfig reads settings from the environment (after .env is loaded).
func loadConfig() config {
	return config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DatabasePath: getEnv("DATABASE_PATH", "./data/hangman.db"),
		HTTP: httpserver.Config{
			ClientOrigin:      getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
			AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			JWTSecret:         getEnv("JWT_SECRET", "dev_secret_change_me"),
			TokenTTL:          time.Duration(envInt("JWT_EXPIRES_DAYS", 14)) * 24 * time.Hour,
			CookieName:        getEnv("COOKIE_NAME", "hangman_token"),
			SecureCookies:     os.Getenv("NODE_ENV") == "production",
		},
	}
}

// archiveEnabled reports whether finished games should be written to SQLite.
func (c config) archiveEnabled() bool {
	return c.DatabasePath != "" && !strings.EqualFold(c.DatabasePath, "off")
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as a positive integer, falling back to def.
func envInt(k string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil && n > 0 {
		return n
	}
	return def
}
