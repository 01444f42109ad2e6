package gormstore

import (
	"context"
	"fmt"
	"time"

	"bird-sightings-api/internal/adapters/storage/postgres"
	"bird-sightings-api/internal/config"
	"bird-sightings-api/internal/platform/logger"

	"github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MemorySQLiteDSN es una base SQLite privada a la conexión (tests / dev).
const MemorySQLiteDSN = "file::memory:?_foreign_keys=on"

func gormConfig(log logger.Logger) *gorm.Config {
	return &gorm.Config{
		Logger: newGormLogger(log),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// OpenPostgres reutiliza el pool pgx de postgres.Open.
func OpenPostgres(ctx context.Context, cfg config.DB, log logger.Logger) (*Store, error) {
	sqlDB, err := postgres.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", mapError(err))
	}

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), gormConfig(log))
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to open GORM connection: %w", err)
	}
	return newOrClose(ctx, db, log)
}

// OpenMySQL fuerza parseTime y UTC para que date_time vuelva como time.Time.
func OpenMySQL(ctx context.Context, cfg config.DB, log logger.Logger) (*Store, error) {
	mc, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid mysql dsn: %w", err)
	}
	mc.ParseTime = true
	mc.Loc = time.UTC

	db, err := gorm.Open(gormmysql.Open(mc.FormatDSN()), gormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("failed to open GORM connection: %w", mapError(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	postgres.ConfigurePool(sqlDB, cfg)

	return newOrClose(ctx, db, log)
}

// OpenSQLite limita el pool a una conexión: SQLite serializa escrituras y
// una base :memory: vive solo en su conexión.
func OpenSQLite(ctx context.Context, dsn string, log logger.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("failed to open GORM connection: %w", mapError(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return newOrClose(ctx, db, log)
}

func newOrClose(ctx context.Context, db *gorm.DB, log logger.Logger) (*Store, error) {
	st, err := New(ctx, db, log)
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}
	return st, nil
}
