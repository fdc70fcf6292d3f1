package config

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/anonto42/inkwell/backend/internal/models"
	"github.com/anonto42/inkwell/backend/pkg/database"
)

// InitDB opens the PostgreSQL pool described by cfg, verifies it with a
// ping and optionally creates the blog tables.
func InitDB(cfg *Config, log *zap.Logger) (*database.Pool, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger: gormlogger.New(zap.NewStdLog(log), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	pool, err := database.New(db, database.Options{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		AcquireTimeout:  cfg.AcquireTimeout,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		_ = pool.Close()
		return nil, errors.Wrap(err, "failed to ping PostgreSQL")
	}
	log.Info("Successfully connected to PostgreSQL!", zap.Int("max_open_conns", cfg.MaxOpenConns))

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			_ = pool.Close()
			return nil, errors.Wrap(err, "failed to auto migrate models")
		}
		log.Info("PostgreSQL auto-migrations completed for all models.")
	}
	return pool, nil
}

// CloseDB closes the pool, logging instead of failing
func CloseDB(pool *database.Pool, log *zap.Logger) {
	if err := pool.Close(); err != nil {
		log.Error("Error closing PostgreSQL connection", zap.Error(err))
		return
	}
	log.Info("PostgreSQL connection closed.")
}
