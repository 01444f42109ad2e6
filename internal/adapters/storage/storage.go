// Package storage elige el adapter de persistencia según config.DB.Driver.
package storage

import (
	"context"
	"fmt"

	"bird-sightings-api/internal/adapters/storage/gormstore"
	"bird-sightings-api/internal/adapters/storage/memory"
	"bird-sightings-api/internal/config"
	"bird-sightings-api/internal/domain/birds"
	"bird-sightings-api/internal/domain/sightings"
	"bird-sightings-api/internal/platform/logger"
)

// Store agrupa los repos y el transactor de un mismo backend.
type Store struct {
	Driver string

	Birds     birds.Repository
	Sightings sightings.Repository
	Tx        sightings.Transactor

	closeFn func() error
}

func (s *Store) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

func Open(ctx context.Context, cfg config.DB, log logger.Logger) (*Store, error) {
	log = log.With(map[string]any{"driver": cfg.Driver})

	var (
		st  *gormstore.Store
		err error
	)
	switch cfg.Driver {
	case config.DriverMemory, "":
		log.Warn("using in-memory storage, data is lost on restart", nil)
		return NewMemory(), nil
	case config.DriverPostgres:
		st, err = gormstore.OpenPostgres(ctx, cfg, log)
	case config.DriverMySQL:
		st, err = gormstore.OpenMySQL(ctx, cfg, log)
	case config.DriverSQLite:
		st, err = gormstore.OpenSQLite(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Driver, err)
	}

	log.Info("storage ready", nil)
	return FromGorm(cfg.Driver, st), nil
}

func NewMemory() *Store {
	st := memory.NewStore()
	return &Store{
		Driver:    config.DriverMemory,
		Birds:     st.Birds(),
		Sightings: st.Sightings(),
		Tx:        st,
	}
}

func FromGorm(driver string, st *gormstore.Store) *Store {
	return &Store{
		Driver:    driver,
		Birds:     st.Birds(),
		Sightings: st.Sightings(),
		Tx:        st,
		closeFn:   st.Close,
	}
}
