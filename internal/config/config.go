package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures everything main needs; flags override these values.
type Config struct {
	Length     int
	MaxGuesses int
	Strategy   string
	DBPath     string
	DailySalt  string
	Player     string // player ID used for CLI statistics

	Port         string
	ClientOrigin string
	JWTSecret    string
	JWTTTL       time.Duration
	CookieName   string
	Production   bool

	LogLevel string
}

// FromEnv builds a Config from environment variables so main stays lean.
// Call godotenv.Load first to pick up a .env file.
func FromEnv() Config {
	return Config{
		Length:     getInt("WRDL_LENGTH", 5),
		MaxGuesses: getInt("WRDL_MAX_GUESSES", 6),
		Strategy:   getEnv("WRDL_STRATEGY", "random"),
		DBPath:     getEnv("WRDL_DB", "./data/wrdl.db"),
		DailySalt:  getEnv("DAILY_SALT", "local_dev_salt"),
		Player:     getEnv("WRDL_PLAYER", "local"),

		Port:         getEnv("PORT", "5175"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		// Development default; override in production.
		JWTSecret:  getEnv("JWT_SECRET", "dev_secret_change_me"),
		JWTTTL:     time.Duration(getInt("JWT_EXPIRES_DAYS", 14)) * 24 * time.Hour,
		CookieName: getEnv("COOKIE_NAME", "wrdl_token"),
		Production: os.Getenv("APP_ENV") == "production",

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
