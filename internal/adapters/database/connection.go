package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/pkg/errors"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to the history database selected by the history config and migrates it
func Open(history config.HistoryConfig, db config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch history.Driver {
	case DriverPostgres:
		dialector = postgres.Open(db.GetDSN())
	case DriverSQLite:
		dialector = sqlite.Open(history.SQLitePath)
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported history driver: %s", history.Driver), nil)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, errors.NewDatabaseError("connect to history database", err)
	}

	if err := Migrate(conn); err != nil {
		return nil, err
	}

	return conn, nil
}

// Migrate creates or updates the history tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SearchHistoryModel{}); err != nil {
		return errors.NewDatabaseError("auto migrate search history", err)
	}
	return nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.NewDatabaseError("get underlying connection", err)
	}
	if err := sqlDB.Close(); err != nil {
		return errors.NewDatabaseError("close history database", err)
	}
	return nil
}
