package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string
	Env             string
	LogLevel        string
	DatabaseURL     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AcquireTimeout  time.Duration
	AutoMigrate     bool
}

// Load reads configuration from the environment, after applying an optional
// .env file. DATABASE_URL is required.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	v.SetDefault("DB_ACQUIRE_TIMEOUT", 3*time.Second)
	v.SetDefault("AUTO_MIGRATE", true)

	cfg := &Config{
		Port:            v.GetString("PORT"),
		Env:             v.GetString("ENV"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		AcquireTimeout:  v.GetDuration("DB_ACQUIRE_TIMEOUT"),
		AutoMigrate:     v.GetBool("AUTO_MIGRATE"),
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable not set")
	}
	if cfg.MaxOpenConns <= 0 {
		return nil, errors.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", cfg.MaxOpenConns)
	}
	if cfg.AcquireTimeout <= 0 {
		return nil, errors.Errorf("DB_ACQUIRE_TIMEOUT must be positive, got %s", cfg.AcquireTimeout)
	}
	return cfg, nil
}
