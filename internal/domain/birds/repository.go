package birds

import (
	"context"

	"bird-sightings-api/internal/platform/apperr"
)

// ErrNotFound lo devuelven los adapters cuando el id/nombre/color no existe.
var ErrNotFound = apperr.NotFound("bird not found")

type Repository interface {
	List(ctx context.Context, f Filter) ([]Bird, error)
	GetByID(ctx context.Context, id int64) (Bird, error)
	FindByName(ctx context.Context, name string) (Bird, error)
	FindByColor(ctx context.Context, color string) (Bird, error)
	Create(ctx context.Context, b Bird) (Bird, error)
	Update(ctx context.Context, b Bird) (Bird, error)
	// Delete borra también los avistamientos del ave, en la misma transacción.
	Delete(ctx context.Context, id int64) error
}
