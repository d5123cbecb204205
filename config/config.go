package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	priceEnvPrefix          = "CLOUD_PLAN_"
	monthlyPriceEnvPrefix   = "MONTHLY_PRICE_"
	yearlyPriceEnvPrefix    = "YEARLY_PRICE_"
	formattedPriceEnvPrefix = "FORMATTED_"
)

type Config struct {
	App     AppConfig
	HTTP    ServerConfig
	GRPC    ServerConfig
	Log     LogConfig
	Metrics MetricsConfig
	Cloud   CloudConfig
}

type AppConfig struct {
	ServiceName string
}

type ServerConfig struct {
	Host string
	Port string
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	Enabled bool
}

type CloudConfig struct {
	RoutePrefix     string
	TrialDays       int
	FreePlanEnabled bool
	FreemodeEnabled bool
	DefaultRegion   string
	CatalogFile     string
	CTAText         string
	ButtonText      string
	// RegionPrices is keyed by lowercase region code.
	RegionPrices map[string]RegionPriceConfig
}

type RegionPriceConfig struct {
	MonthlyPrice          *int64
	YearlyPrice           *int64
	MonthlyPriceFormatted string
	YearlyPriceFormatted  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			ServiceName: getEnv("APP_SERVICE_NAME", "cloud-plans-service"),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		GRPC: ServerConfig{
			Host: getEnv("GRPC_HOST", "0.0.0.0"),
			Port: getEnv("GRPC_PORT", "9090"),
		},
		Log:     LogConfig{Level: getEnv("LOG_LEVEL", "info")},
		Metrics: MetricsConfig{Enabled: getBoolEnv("METRICS_ENABLED", true)},
		Cloud: CloudConfig{
			RoutePrefix:     getEnv("CLOUD_ROUTE_PREFIX", "/api/v1/cloud"),
			TrialDays:       getIntEnv("CLOUD_TRIAL_DAYS", 3),
			FreePlanEnabled: getBoolEnv("CLOUD_FREE_PLAN_ENABLED", false),
			FreemodeEnabled: getBoolEnv("CLOUD_FREEMODE_ENABLED", false),
			DefaultRegion:   strings.ToLower(getEnv("CLOUD_DEFAULT_REGION", "us")),
			CatalogFile:     getEnv("CLOUD_CATALOG_FILE", ""),
			CTAText:         getEnv("CLOUD_PLAN_CTA_TEXT", ""),
			ButtonText:      getEnv("CLOUD_PLAN_BUTTON_TEXT", ""),
			RegionPrices:    loadRegionPrices(os.Environ()),
		},
	}, nil
}

// loadRegionPrices collects CLOUD_PLAN_{MONTHLY,YEARLY}_PRICE[_FORMATTED]_<CODE> variables.
func loadRegionPrices(environ []string) map[string]RegionPriceConfig {
	prices := make(map[string]RegionPriceConfig)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || value == "" || !strings.HasPrefix(key, priceEnvPrefix) {
			continue
		}
		rest := strings.TrimPrefix(key, priceEnvPrefix)

		var monthly bool
		switch {
		case strings.HasPrefix(rest, monthlyPriceEnvPrefix):
			monthly = true
			rest = strings.TrimPrefix(rest, monthlyPriceEnvPrefix)
		case strings.HasPrefix(rest, yearlyPriceEnvPrefix):
			rest = strings.TrimPrefix(rest, yearlyPriceEnvPrefix)
		default:
			continue
		}

		formatted := strings.HasPrefix(rest, formattedPriceEnvPrefix)
		code := strings.ToLower(strings.TrimPrefix(rest, formattedPriceEnvPrefix))
		if code == "" {
			continue
		}

		entry := prices[code]
		if formatted {
			if monthly {
				entry.MonthlyPriceFormatted = value
			} else {
				entry.YearlyPriceFormatted = value
			}
		} else {
			amount, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
			if err != nil {
				continue
			}
			if monthly {
				entry.MonthlyPrice = &amount
			} else {
				entry.YearlyPrice = &amount
			}
		}
		prices[code] = entry
	}
	return prices
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
