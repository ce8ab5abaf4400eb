package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the scoring service. Values are read
// from the environment once at startup and passed down explicitly; no
// component reads process state after construction.
type Config struct {
	GRPCPort      string
	HTTPPort      string
	KafkaBroker   string
	KafkaTopic    string
	ModelURL      string
	ModelFeatures []string
	ScoreMin      int
	ScoreMax      int
	Environment   string
	LogLevel      string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		GRPCPort:      getEnv("GRPC_PORT", "8093"),
		HTTPPort:      getEnv("HTTP_PORT", "9093"),
		KafkaBroker:   getEnv("KAFKA_BROKER", "localhost:9092"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "credit.events"),
		ModelURL:      getEnv("MODEL_URL", "http://localhost:5000"),
		ModelFeatures: splitCSV(getEnv("MODEL_FEATURES", "annual_income,debt_to_income,employment_years,loan_amount,loan_annuity,previous_loan_count")),
		ScoreMin:      getEnvInt("SCORE_MIN", 300),
		ScoreMax:      getEnvInt("SCORE_MAX", 900),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

// GRPCAddress returns the full gRPC listen address.
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf(":%s", c.GRPCPort)
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
