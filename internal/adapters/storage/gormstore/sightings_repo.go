package gormstore

import (
	"context"
	"time"

	"bird-sightings-api/internal/domain/sightings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sightingRepo struct {
	db *gorm.DB
}

// base selecciona el avistamiento con el nombre del ave dueña.
func (r *sightingRepo) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("sighting").
		Select("sighting.id, sighting.bird_id, bird.name AS bird_name, sighting.location, sighting.date_time").
		Joins("JOIN bird ON bird.id = sighting.bird_id")
}

func (r *sightingRepo) scan(q *gorm.DB) ([]sightings.Sighting, error) {
	var rows []sightingView
	if err := q.Order("sighting.id").Scan(&rows).Error; err != nil {
		return nil, mapError(err)
	}

	out := make([]sightings.Sighting, 0, len(rows))
	for _, v := range rows {
		out = append(out, toSighting(v))
	}
	return out, nil
}

func (r *sightingRepo) List(ctx context.Context) ([]sightings.Sighting, error) {
	return r.scan(r.base(ctx))
}

func (r *sightingRepo) ListByLocation(ctx context.Context, location string) ([]sightings.Sighting, error) {
	return r.scan(r.base(ctx).Where("sighting.location = ?", location))
}

func (r *sightingRepo) ListByBirdName(ctx context.Context, birdName string) ([]sightings.Sighting, error) {
	return r.scan(r.base(ctx).Where("bird.name = ?", birdName))
}

func (r *sightingRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]sightings.Sighting, error) {
	return r.scan(r.base(ctx).Where("sighting.date_time BETWEEN ? AND ?", start.UTC(), end.UTC()))
}

func (r *sightingRepo) GetByID(ctx context.Context, id int64) (sightings.Sighting, error) {
	items, err := r.scan(r.base(ctx).Where("sighting.id = ?", id).Limit(1))
	if err != nil {
		return sightings.Sighting{}, err
	}
	if len(items) == 0 {
		return sightings.Sighting{}, sightings.ErrNotFound
	}
	return items[0], nil
}

func (r *sightingRepo) Create(ctx context.Context, s sightings.Sighting) (sightings.Sighting, error) {
	m := sightingModel{
		BirdID:   s.BirdID,
		Location: s.Location,
		DateTime: utcPtr(s.DateTime),
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return sightings.Sighting{}, mapError(err)
	}
	return r.GetByID(ctx, m.ID)
}

// Update reemplaza ave, ubicación y fecha. Un id inexistente es ErrNotFound.
func (r *sightingRepo) Update(ctx context.Context, s sightings.Sighting) (sightings.Sighting, error) {
	if _, err := r.GetByID(ctx, s.ID); err != nil {
		return sightings.Sighting{}, err
	}

	err := r.db.WithContext(ctx).
		Model(&sightingModel{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"bird_id":   s.BirdID,
			"location":  s.Location,
			"date_time": utcPtr(s.DateTime),
		}).Error
	if err != nil {
		return sightings.Sighting{}, mapError(err)
	}
	return r.GetByID(ctx, s.ID)
}

func (r *sightingRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&sightingModel{}, id)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return sightings.ErrNotFound
	}
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
