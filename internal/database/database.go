package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/killallgit/xianplay-api/internal/models"
)

type DB struct {
	*gorm.DB
}

// Initialize opens the SQLite database at dbPath, creating its directory if
// needed. ":memory:" and "" open a private in-memory database.
func Initialize(dbPath string, verbose bool) (*DB, error) {
	inMemory := dbPath == "" || dbPath == ":memory:"

	if !inMemory {
		dir := filepath.Dir(dbPath)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	logLevel := logger.Error
	if verbose {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(dbPath), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	// Every connection to ":memory:" is a separate database, so pin the pool to one.
	if inMemory {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	logrus.WithFields(logrus.Fields{
		"path":      dbPath,
		"in_memory": inMemory,
	}).Debug("database opened")

	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// AutoMigrate runs GORM auto migration for the provided models
func (db *DB) AutoMigrate(dst ...any) error {
	if err := db.DB.AutoMigrate(dst...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	logrus.WithField("models", len(dst)).Info("database migrated")
	return nil
}

// Migrate brings the library schema up to date
func (db *DB) Migrate() error {
	return db.AutoMigrate(models.All()...)
}

// TableStatus reports whether the table backing a model exists
type TableStatus struct {
	Table  string
	Exists bool
}

// MigrationStatus lists the library tables and whether each is present
func (db *DB) MigrationStatus() ([]TableStatus, error) {
	statuses := make([]TableStatus, 0, len(models.All()))
	for _, model := range models.All() {
		stmt := &gorm.Statement{DB: db.DB}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		statuses = append(statuses, TableStatus{
			Table:  stmt.Schema.Table,
			Exists: db.Migrator().HasTable(model),
		})
	}
	return statuses, nil
}

// DropAll drops every library table. Data is lost.
func (db *DB) DropAll() error {
	if err := db.Migrator().DropTable(models.All()...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	logrus.Warn("library tables dropped")
	return nil
}
