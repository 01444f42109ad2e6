package sightings

import (
	"context"
	"time"

	"bird-sightings-api/internal/domain/birds"
	"bird-sightings-api/internal/platform/apperr"
)

type Service struct {
	repo Repository
	tx   Transactor
}

func NewService(repo Repository, tx Transactor) *Service {
	return &Service{
		repo: repo,
		tx:   tx,
	}
}

type CreateInput struct {
	BirdName string
	Location string
	DateTime *time.Time
}

type UpdateInput struct {
	ID       int64
	BirdName string
	Location string
	DateTime *time.Time
}

func (s *Service) ListAll(ctx context.Context) ([]Sighting, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByLocation(ctx context.Context, location string) ([]Sighting, error) {
	return s.repo.ListByLocation(ctx, location)
}

func (s *Service) ListByBirdName(ctx context.Context, birdName string) ([]Sighting, error) {
	return s.repo.ListByBirdName(ctx, birdName)
}

// ListByDateRange: start > end devuelve vacío, igual que BETWEEN.
func (s *Service) ListByDateRange(ctx context.Context, start, end time.Time) ([]Sighting, error) {
	start, end = Normalize(start), Normalize(end)
	if start.After(end) {
		return []Sighting{}, nil
	}
	return s.repo.ListByDateRange(ctx, start, end)
}

// Create resuelve (o crea) el ave por nombre y guarda el avistamiento en la
// misma transacción.
func (s *Service) Create(ctx context.Context, in CreateInput) (Sighting, error) {
	if err := ValidateCreate(in); err != nil {
		return Sighting{}, err
	}

	var out Sighting
	err := s.tx.WithinTx(ctx, func(ctx context.Context, bw BirdWriter, repo Repository) error {
		b, err := resolveBird(ctx, bw, in.BirdName)
		if err != nil {
			return err
		}

		created, err := repo.Create(ctx, Sighting{
			BirdID:   b.ID,
			Location: in.Location,
			DateTime: normalizePtr(in.DateTime),
		})
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return Sighting{}, err
	}
	return out, nil
}

// Update sobreescribe location y dateTime aunque vengan vacíos; el ave se
// vuelve a resolver por nombre.
func (s *Service) Update(ctx context.Context, in UpdateInput) (Sighting, error) {
	if err := ValidateUpdate(in); err != nil {
		return Sighting{}, err
	}

	var out Sighting
	err := s.tx.WithinTx(ctx, func(ctx context.Context, bw BirdWriter, repo Repository) error {
		// Primero el id: si no existe no se crea ningún ave.
		if _, err := repo.GetByID(ctx, in.ID); err != nil {
			return err
		}

		b, err := resolveBird(ctx, bw, in.BirdName)
		if err != nil {
			return err
		}

		updated, err := repo.Update(ctx, Sighting{
			ID:       in.ID,
			BirdID:   b.ID,
			Location: in.Location,
			DateTime: normalizePtr(in.DateTime),
		})
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return Sighting{}, err
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return 0, err
	}
	return id, nil
}

// resolveBird busca el ave por nombre y la crea (solo con nombre) si no existe.
func resolveBird(ctx context.Context, bw BirdWriter, name string) (birds.Bird, error) {
	b, err := bw.FindByName(ctx, name)
	if err == nil {
		return b, nil
	}
	if !apperr.IsNotFound(err) {
		return birds.Bird{}, err
	}
	return bw.Create(ctx, birds.Bird{Name: name})
}
