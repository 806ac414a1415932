package config

import (
	"os"
	"strconv"
	"time"

	defaults "goldquote-service/internal/infrastructure/config"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port            string
	ShutdownTimeout time.Duration
	// Provider
	Provider         string
	FetchTimeout     time.Duration
	FetchRetries     int
	FetchUserAgent   string
	FakeSellingPrice float64
	FakeBuyingPrice  float64
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func floatDef(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func msDef(key string, def time.Duration) time.Duration {
	ms := atoiDef(getEnv(key, ""), int(def/time.Millisecond))
	if ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

// Load reads environment variables and applies defaults.
func Load() Config {
	retries := atoiDef(getEnv("FETCH_RETRIES", "0"), 0)
	if retries < 0 {
		retries = 0
	}
	return Config{
		Env:              getEnv("ENV", "local"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Port:             getEnv("PORT", defaults.DefaultHTTPPort),
		ShutdownTimeout:  msDef("SHUTDOWN_TIMEOUT_MS", defaults.DefaultShutdownTimeout),
		Provider:         getEnv("PROVIDER", defaults.DefaultProvider),
		FetchTimeout:     msDef("FETCH_TIMEOUT_MS", defaults.DefaultFetchTimeout),
		FetchRetries:     retries,
		FetchUserAgent:   getEnv("FETCH_USER_AGENT", defaults.DefaultUserAgent),
		FakeSellingPrice: floatDef(getEnv("FAKE_SELLING_PRICE", ""), defaults.DefaultFakeSelling),
		FakeBuyingPrice:  floatDef(getEnv("FAKE_BUYING_PRICE", ""), defaults.DefaultFakeBuying),
	}
}
