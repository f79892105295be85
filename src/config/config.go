package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	Env        string
	Rates      RatesConfig
}

// LoadFromEnv reads configuration from environment variables with fallback defaults.
// It also loads `.env` if present (for local development).
func LoadFromEnv() *Config {
	// Load .env if exists, ignore error if no file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	return cfg
}

// Load builds the configuration from the current environment.
func Load() (*Config, error) {
	demandInfluence, err := getFloat("DEMAND_INFLUENCE", DefaultDemandInfluence)
	if err != nil {
		return nil, err
	}
	volumeInfluence, err := getFloat("VOLUME_INFLUENCE", DefaultVolumeInfluence)
	if err != nil {
		return nil, err
	}

	intervalStr := getEnv("RATE_RECOMPUTE_INTERVAL", DefaultRecomputeInterval.String())
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_RECOMPUTE_INTERVAL duration: %w", err)
	}

	rates := DefaultRates()
	if path := os.Getenv("RATE_PAIRS_FILE"); path != "" {
		rates, err = LoadRatesFile(path)
		if err != nil {
			return nil, err
		}
		rates.PairsFile = path
	}
	rates.DemandInfluence = demandInfluence
	rates.VolumeInfluence = volumeInfluence
	rates.RecomputeInterval = interval

	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		Env:        getEnv("ENV", "dev"),
		Rates:      rates,
	}, nil
}

// helper to get env with default fallback
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getFloat(key string, fallback float64) (float64, error) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
