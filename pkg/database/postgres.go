package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Eursukkul/aquaagro-admin/internal/models"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// MaxWait bounds the connect retries.
	MaxWait time.Duration
}

// NewPostgresDB connects with retries, sizes the pool and migrates the
// booking table.
func NewPostgresDB(ctx context.Context, dsn string, opts Options, log *zap.Logger) (*gorm.DB, error) {
	var db *gorm.DB

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = opts.MaxWait
	policy.MaxInterval = 5 * time.Second

	err := backoff.RetryNotify(
		func() error {
			var err error
			db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
				Logger: logger.Default.LogMode(logger.Warn),
			})
			if err != nil {
				return fmt.Errorf("open: %w", err)
			}
			sqlDB, err := db.DB()
			if err != nil {
				return backoff.Permanent(fmt.Errorf("sql handle: %w", err))
			}
			if err := sqlDB.PingContext(ctx); err != nil {
				_ = sqlDB.Close()
				return fmt.Errorf("ping: %w", err)
			}
			return nil
		},
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			log.Warn("postgres connection failed, retrying",
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql handle: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := db.WithContext(ctx).AutoMigrate(&models.Booking{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate: %w", err)
	}

	log.Info("connected to postgres")
	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
