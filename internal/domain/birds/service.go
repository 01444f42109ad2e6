package birds

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name   string
	Color  string
	Weight float64
	Height float64
}

// ListBirds aplica ambos filtros si vienen; sin filtros devuelve todo.
func (s *Service) ListBirds(ctx context.Context, name, color *string) ([]Bird, error) {
	return s.repo.List(ctx, Filter{Name: name, Color: color})
}

func (s *Service) GetByName(ctx context.Context, name string) (Bird, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *Service) GetByColor(ctx context.Context, color string) (Bird, error) {
	return s.repo.FindByColor(ctx, color)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Bird, error) {
	if err := ValidateCreate(in); err != nil {
		return Bird{}, err
	}

	return s.repo.Create(ctx, Bird{
		Name:   in.Name,
		Color:  in.Color,
		Weight: in.Weight,
		Height: in.Height,
	})
}

// Update hace merge parcial: los campos nil del patch quedan como están.
func (s *Service) Update(ctx context.Context, p Patch) (Bird, error) {
	if err := ValidatePatch(p); err != nil {
		return Bird{}, err
	}

	current, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return Bird{}, err
	}

	return s.repo.Update(ctx, MergePatch(current, p))
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
