package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"SocialMedia/models"
	"SocialMedia/pkg/config"
)

// Open connects to the configured database and sizes the connection pool.
// Every statement borrows a pooled connection and returns it when done, so no
// caller holds a connection across calls.
func Open(s config.Settings, log logrus.StdLogger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch s.DBDriver {
	case "mysql":
		dialector = mysql.Open(s.DBDSN)
	case "sqlite", "":
		dialector = sqlite.Open(s.DBDSN)
	default:
		return nil, fmt.Errorf("database: unsupported driver %q", s.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// each statement stands alone; the services never span a transaction
		SkipDefaultTransaction: true,
		Logger: gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("database: open %s: %w", s.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: pool: %w", err)
	}
	maxOpen := s.DBMaxOpenConns
	if isInMemory(s) {
		// every new connection to :memory: would see an empty database
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	idle := s.DBMaxIdleConns
	if maxOpen > 0 {
		idle = min(idle, maxOpen)
	}
	sqlDB.SetMaxIdleConns(idle)
	if !isInMemory(s) {
		sqlDB.SetConnMaxLifetime(s.DBConnMaxLifetime)
	}
	return db, nil
}

// Migrate creates or updates the Account and Message tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&models.Account{}, &models.Message{})
}

// Close releases the underlying pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isInMemory(s config.Settings) bool {
	if s.DBDriver == "mysql" {
		return false
	}
	return s.DBDSN == ":memory:" || strings.Contains(s.DBDSN, "mode=memory")
}
