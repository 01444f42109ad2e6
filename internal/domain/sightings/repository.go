package sightings

import (
	"context"
	"time"

	"bird-sightings-api/internal/domain/birds"
	"bird-sightings-api/internal/platform/apperr"
)

var ErrNotFound = apperr.NotFound("sighting not found")

// Repository devuelve los avistamientos con BirdName resuelto y ordenados por id.
type Repository interface {
	List(ctx context.Context) ([]Sighting, error)
	ListByLocation(ctx context.Context, location string) ([]Sighting, error)
	ListByBirdName(ctx context.Context, birdName string) ([]Sighting, error)
	// ListByDateRange incluye ambos extremos. Filas sin dateTime no aparecen.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Sighting, error)
	GetByID(ctx context.Context, id int64) (Sighting, error)
	Create(ctx context.Context, s Sighting) (Sighting, error)
	Update(ctx context.Context, s Sighting) (Sighting, error)
	Delete(ctx context.Context, id int64) error
}

// BirdWriter es lo mínimo que el upsert necesita del store de aves.
// birds.Repository lo cumple.
type BirdWriter interface {
	FindByName(ctx context.Context, name string) (birds.Bird, error)
	Create(ctx context.Context, b birds.Bird) (birds.Bird, error)
}

// TxFunc recibe repos atados a la transacción en curso.
type TxFunc func(ctx context.Context, bw BirdWriter, repo Repository) error

// Transactor ejecuta fn en una transacción: si fn devuelve error nada se persiste.
type Transactor interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}
