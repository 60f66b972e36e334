package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB opens the in-memory SQLite database that backs the session-lifetime
// school table. The dataset has no durable store: the table is rebuilt from
// the College Scorecard CSV at startup and on refresh.
func NewDB(logger *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	// cache=shared keeps one shared memory database across pooled connections.
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open in-memory database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get underlying sql.DB: %w", err)
	}

	// A single connection pins the memory database for the process lifetime.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	logger.Info("in-memory database ready")

	return db, nil
}
