package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort                  string   `env:"HTTP_PORT" envDefault:"8080"`
	ModelBaseURL              string   `env:"MODEL_BASE_URL" envDefault:"http://ml-model:5000"`
	ModelTimeoutSeconds       int      `env:"MODEL_TIMEOUT_SECONDS" envDefault:"30"`
	ModelMaxAttempts          int      `env:"MODEL_MAX_ATTEMPTS" envDefault:"2"`
	RedisAddr                 string   `env:"REDIS_ADDR"`
	RedisPassword             string   `env:"REDIS_PASSWORD"`
	RedisDB                   int      `env:"REDIS_DB" envDefault:"0"`
	PredictionCacheTTLMinutes int      `env:"PREDICTION_CACHE_TTL_MINUTES" envDefault:"60"`
	KafkaBrokers              []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic                string   `env:"KAFKA_TOPIC" envDefault:"health.analysis.completed"`
	LabelsFile                string   `env:"LABELS_FILE"`
	PlanTemplatesFile         string   `env:"PLAN_TEMPLATES_FILE"`
	CORSAllowedOrigins        []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:3001"`
	LogDevelopment            bool     `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ModelTimeout() time.Duration {
	return time.Duration(c.ModelTimeoutSeconds) * time.Second
}

func (c *Config) PredictionCacheTTL() time.Duration {
	return time.Duration(c.PredictionCacheTTLMinutes) * time.Minute
}
