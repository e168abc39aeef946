// Package db opens the application database connection.
package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/wattwiselabs/wattwise/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var Module = fx.Module("db",
	fx.Provide(New),
)

func New(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	var (
		conn *gorm.DB
		err  error
	)
	switch cfg.Database.Driver {
	case "postgres":
		conn, err = gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
	case "sqlite", "":
		conn, err = gorm.Open(sqlite.Open(cfg.Database.DSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	log.Named("db").Info("database connected", zap.String("driver", cfg.Database.Driver))
	return conn, nil
}
