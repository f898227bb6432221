package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Shopify ShopifyConfig
	Sheet   SheetConfig
	Cursor  CursorConfig

	Schedule  string `validate:"required"`
	AppPort   string `validate:"omitempty,numeric"`
	LogFormat string `validate:"oneof=text json"`
}

type ShopifyConfig struct {
	Store       string        `validate:"required"`
	AccessToken string        `validate:"required"`
	APIVersion  string        `validate:"required"`
	BaseURL     string        `validate:"required,url"`
	PageSize    int           `validate:"min=1,max=250"`
	Timeout     time.Duration `validate:"gt=0"`
}

type SheetConfig struct {
	SpreadsheetId   string `validate:"required"`
	Range           string `validate:"required"`
	CredentialsFile string `validate:"omitempty,file"`
}

type CursorConfig struct {
	Backend     string `validate:"oneof=file postgres spanner"`
	File        string `validate:"required_if=Backend file"`
	Name        string `validate:"required"`
	DatabaseURI string `validate:"required_if=Backend postgres"`
	SpannerURI  string `validate:"required_if=Backend spanner"`
}

// Load reads .env (when present) and the process environment into a
// validated Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
	return FromEnv()
}

// FromEnv builds the config from the environment alone.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Shopify: ShopifyConfig{
			Store:       os.Getenv("SHOPIFY_STORE"),
			AccessToken: os.Getenv("SHOPIFY_ACCESS_TOKEN"),
			APIVersion:  getEnv("SHOPIFY_API_VERSION", "2024-01"),
		},
		Sheet: SheetConfig{
			SpreadsheetId:   os.Getenv("SHEET_ID"),
			Range:           getEnv("SHEET_RANGE", "Orders!A2:F"),
			CredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		},
		Cursor: CursorConfig{
			Backend:     getEnv("CURSOR_BACKEND", "file"),
			File:        getEnv("CURSOR_FILE", "last_fetch.txt"),
			Name:        getEnv("CURSOR_NAME", "orders"),
			DatabaseURI: os.Getenv("DATABASE_URI"),
			SpannerURI:  os.Getenv("SPANNER_URI"),
		},
		Schedule:  getEnv("EXPORT_SCHEDULE", "0 */6 * * *"),
		AppPort:   os.Getenv("APP_PORT"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	cfg.Shopify.BaseURL = getEnv("SHOPIFY_BASE_URL", "https://"+cfg.Shopify.Store)

	var err error
	if cfg.Shopify.PageSize, err = strconv.Atoi(getEnv("SHOPIFY_PAGE_SIZE", "250")); err != nil {
		return nil, fmt.Errorf("parse SHOPIFY_PAGE_SIZE: %w", err)
	}
	if cfg.Shopify.Timeout, err = time.ParseDuration(getEnv("SHOPIFY_TIMEOUT", "30s")); err != nil {
		return nil, fmt.Errorf("parse SHOPIFY_TIMEOUT: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
