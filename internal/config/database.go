package config

import (
	"fmt"

	"github.com/flowise/cycle-tracker/internal/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func NewDatabase(cfg *Config, log *logger.Logger) (*gorm.DB, error) {
	if log == nil {
		log = logger.Nop()
	}

	logLevel := gormlogger.Silent
	if cfg.LogLevel == "debug" {
		logLevel = gormlogger.Info
	}

	var dialector gorm.Dialector
	switch cfg.DatabaseDriver {
	case DriverPostgres, "":
		dialector = postgres.Open(cfg.DatabaseURL)
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	if cfg.DatabaseDriver == DriverSQLite {
		// SQLite allows one writer, and an in-memory database exists per
		// connection, so keep the pool at a single connection.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)

		// Cascading deletes need foreign keys switched on.
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, err
		}
	}

	log.Info("database connection established", "driver", cfg.DatabaseDriver)
	return db, nil
}
