package gormstore

import (
	"context"
	"errors"

	"bird-sightings-api/internal/domain/birds"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type birdRepo struct {
	db *gorm.DB
}

func (r *birdRepo) List(ctx context.Context, f birds.Filter) ([]birds.Bird, error) {
	q := r.db.WithContext(ctx).Model(&birdModel{})
	if f.Name != nil {
		q = q.Where("name = ?", *f.Name)
	}
	if f.Color != nil {
		q = q.Where("color = ?", *f.Color)
	}

	var rows []birdModel
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}

	out := make([]birds.Bird, 0, len(rows))
	for _, m := range rows {
		out = append(out, toBird(m))
	}
	return out, nil
}

func (r *birdRepo) GetByID(ctx context.Context, id int64) (birds.Bird, error) {
	m, err := firstBird(r.db.WithContext(ctx), id)
	if err != nil {
		return birds.Bird{}, err
	}
	return toBird(m), nil
}

func (r *birdRepo) FindByName(ctx context.Context, name string) (birds.Bird, error) {
	return r.findFirst(ctx, "name = ?", name)
}

func (r *birdRepo) FindByColor(ctx context.Context, color string) (birds.Bird, error) {
	return r.findFirst(ctx, "color = ?", color)
}

// findFirst: sin unicidad en name/color, gana el menor id.
func (r *birdRepo) findFirst(ctx context.Context, cond string, arg any) (birds.Bird, error) {
	var rows []birdModel
	err := r.db.WithContext(ctx).
		Where(cond, arg).
		Order("id").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return birds.Bird{}, mapError(err)
	}
	if len(rows) == 0 {
		return birds.Bird{}, birds.ErrNotFound
	}
	return toBird(rows[0]), nil
}

func (r *birdRepo) Create(ctx context.Context, b birds.Bird) (birds.Bird, error) {
	m := fromBird(b)
	m.ID = 0

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return birds.Bird{}, mapError(err)
	}
	return toBird(m), nil
}

// Update no mira RowsAffected: MySQL reporta 0 si los valores no cambian.
func (r *birdRepo) Update(ctx context.Context, b birds.Bird) (birds.Bird, error) {
	var out birdModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := firstBird(tx, b.ID); err != nil {
			return err
		}

		err := tx.Model(&birdModel{}).
			Where("id = ?", b.ID).
			Updates(map[string]any{
				"name":   b.Name,
				"color":  b.Color,
				"weight": b.Weight,
				"height": b.Height,
			}).Error
		if err != nil {
			return err
		}

		m, err := firstBird(tx, b.ID)
		if err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return birds.Bird{}, mapError(err)
	}
	return toBird(out), nil
}

// Delete borra primero los avistamientos y después el ave, en una transacción.
func (r *birdRepo) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := firstBird(tx, id); err != nil {
			return err
		}
		if err := tx.Where("bird_id = ?", id).Delete(&sightingModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&birdModel{}, id).Error
	})
	return mapError(err)
}

func firstBird(db *gorm.DB, id int64) (birdModel, error) {
	var m birdModel
	if err := db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return birdModel{}, birds.ErrNotFound
		}
		return birdModel{}, mapError(err)
	}
	return m, nil
}
