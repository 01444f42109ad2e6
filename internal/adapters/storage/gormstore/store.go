// Package gormstore implementa los repos de aves y avistamientos sobre gorm.
// El mismo código sirve para Postgres, MySQL y SQLite; solo cambia el dialector.
package gormstore

import (
	"context"
	"fmt"

	"bird-sightings-api/internal/domain/birds"
	"bird-sightings-api/internal/domain/sightings"
	"bird-sightings-api/internal/platform/logger"

	"gorm.io/gorm"
)

type Store struct {
	db  *gorm.DB
	log logger.Logger
}

// New migra el esquema (bird, sighting) y devuelve el store.
func New(ctx context.Context, db *gorm.DB, log logger.Logger) (*Store, error) {
	if err := db.WithContext(ctx).AutoMigrate(&birdModel{}, &sightingModel{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate: %w", mapError(err))
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) Birds() birds.Repository {
	return &birdRepo{db: s.db}
}

func (s *Store) Sightings() sightings.Repository {
	return &sightingRepo{db: s.db}
}

// WithinTx corre fn con repos atados a una transacción de gorm.
func (s *Store) WithinTx(ctx context.Context, fn sightings.TxFunc) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &birdRepo{db: tx}, &sightingRepo{db: tx})
	})
	return mapError(err)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
