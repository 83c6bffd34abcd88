package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerPort     string
	DiseaseAPIBase string
	UserAgent      string
	HTTPTimeout    time.Duration

	RedisAddress  string
	RedisPassword string
	CacheTTL      time.Duration

	SessionTTL time.Duration

	LogLevel  string
	LogFormat string
}

var AppConfig Config

func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found")
	}

	AppConfig = Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		DiseaseAPIBase: getEnv("DISEASE_API_BASE", "https://disease.sh/v3/covid-19"),
		UserAgent:      getEnv("USER_AGENT", "covid19-tracker-service/1.0"),
		HTTPTimeout:    getDuration("HTTP_TIMEOUT", 15*time.Second),
		RedisAddress:   os.Getenv("REDIS_ADDRESS"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		CacheTTL:       getDuration("CACHE_TTL", time.Minute),
		SessionTTL:     getDuration("SESSION_TTL", 30*time.Minute),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}

	return ConfigureLogging(AppConfig)
}

// ConfigureLogging applies the log level and format to the standard logrus logger.
func ConfigureLogging(cfg Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		logrus.WithField("key", key).WithField("value", v).Warn("Invalid duration, using default")
		return fallback
	}
	return d
}
