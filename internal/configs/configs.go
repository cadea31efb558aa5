package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	ShutdownTimeoutSeconds int

	MorningHour int
	EveningHour int

	EmailHost string
	EmailPort string
	EmailUser string
	EmailPass string
	NotifyTo  string

	// RedisAddr is empty when REDIS_HOST is unset; an empty address disables
	// the once-per-day digest marker.
	RedisAddr         string
	RedisDigestPrefix string
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	redisAddr := ""
	if redisHost := getEnv("REDIS_HOST", ""); redisHost != "" {
		redisAddr = fmt.Sprintf("%s:%s", redisHost, getEnv("REDIS_PORT", "6379"))
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		MorningHour:            getEnvAsInt("MORNING_HOUR", 8),
		EveningHour:            getEnvAsInt("EVENING_HOUR", 20),
		EmailHost:              getEnv("EMAIL_HOST", ""),
		EmailPort:              getEnv("EMAIL_PORT", "587"),
		EmailUser:              getEnv("EMAIL_USER", ""),
		EmailPass:              getEnv("EMAIL_PASS", ""),
		NotifyTo:               getEnv("NOTIFY_TO", ""),
		RedisAddr:              redisAddr,
		RedisDigestPrefix:      getEnv("REDIS_DIGEST_KEY_PREFIX", "eon:digest"),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.MorningHour < 0 || cfg.MorningHour > 23 {
		log.Fatal("MORNING_HOUR must be between 0 and 23")
	}
	if cfg.EveningHour < 0 || cfg.EveningHour > 23 {
		log.Fatal("EVENING_HOUR must be between 0 and 23")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
