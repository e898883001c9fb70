package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr     string
	BaseURL  string // museum site origin, e.g. https://collections.louvre.fr
	APIPath  string // path prefix of the JSON record API, e.g. /ark:/53355
	PageSize int    // artworks per search-results page
	Timeout  time.Duration
}

const (
	Addr     = "APP_ADDR"
	BaseURL  = "MUSEUM_BASE_URL"
	APIPath  = "MUSEUM_API_PATH"
	PageSize = "PAGE_SIZE"
	Timeout  = "TIMEOUT"
)

func FromEnv() (Config, error) {
	var cfg Config

	cfg.Addr = getEnv(Addr, ":8080")
	cfg.BaseURL = getEnv(BaseURL, "https://collections.louvre.fr")
	cfg.APIPath = getEnv(APIPath, "/ark:/53355")

	var err error
	if cfg.PageSize, err = getEnvInt(PageSize, 20); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", PageSize, err)
	}
	timeoutStr := getEnv(Timeout, "10s")
	if cfg.Timeout, err = time.ParseDuration(timeoutStr); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", Timeout, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	return i, nil
}
