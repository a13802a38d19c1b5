package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yuvrxj-24/sales-analytics-system/models"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	SalesDataPath    string
	EnrichedDataPath string
	ReportPath       string

	CatalogBaseURL  string
	HTTPTimeoutMs   int
	MaxRetries      int
	MaxConcurrency  int
	RateLimitMs     int
	CatalogPageSize int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		SalesDataPath:    getEnv("SALES_DATA_PATH", "./data/sales_data.txt"),
		EnrichedDataPath: getEnv("ENRICHED_DATA_PATH", "./data/enriched_sales_data.txt"),
		ReportPath:       getEnv("REPORT_PATH", "./output/sales_report.txt"),

		CatalogBaseURL:  getEnv("CATALOG_BASE_URL", "https://dummyjson.com/products"),
		HTTPTimeoutMs:   getEnvInt("HTTP_TIMEOUT_MS", 15000),
		MaxRetries:      getEnvInt("MAX_RETRIES", 3),
		MaxConcurrency:  getEnvInt("MAX_CONCURRENCY", 3),
		RateLimitMs:     getEnvInt("RATE_LIMIT_MS", 200),
		CatalogPageSize: getEnvInt("CATALOG_PAGE_SIZE", 100),
	}
}

// DefaultReportSettings returns the settings used when no YAML file is given.
func DefaultReportSettings() *models.ReportSettings {
	return &models.ReportSettings{
		CurrencySymbol:        "₹",
		TopN:                  5,
		LowPerformerThreshold: 10,
	}
}

// LoadReportSettings reads report presentation settings from a YAML file.
// An empty path yields the defaults; fields missing from the file keep
// their default values.
func LoadReportSettings(path string) (*models.ReportSettings, error) {
	settings := DefaultReportSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read report settings %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("config: parse report settings %q: %w", path, err)
	}

	if settings.CurrencySymbol == "" {
		settings.CurrencySymbol = "₹"
	}
	if settings.TopN <= 0 {
		settings.TopN = 5
	}
	if settings.LowPerformerThreshold <= 0 {
		settings.LowPerformerThreshold = 10
	}
	return settings, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
