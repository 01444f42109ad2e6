package gormstore

import (
	"time"

	"bird-sightings-api/internal/domain/birds"
	"bird-sightings-api/internal/domain/sightings"
)

type birdModel struct {
	ID     int64   `gorm:"primaryKey;autoIncrement"`
	Name   string  `gorm:"size:255;not null;index"`
	Color  string  `gorm:"size:255"`
	Weight float64 `gorm:"not null"`
	Height float64 `gorm:"not null"`
}

func (birdModel) TableName() string {
	return "bird"
}

// sightingModel no guarda el nombre del ave; se resuelve con JOIN al leer.
type sightingModel struct {
	ID       int64      `gorm:"primaryKey;autoIncrement"`
	Location string     `gorm:"size:255"`
	DateTime *time.Time `gorm:"column:date_time;index"`
	BirdID   int64      `gorm:"not null;index"`

	Bird *birdModel `gorm:"foreignKey:BirdID;constraint:OnDelete:CASCADE"`
}

func (sightingModel) TableName() string {
	return "sighting"
}

// sightingView es la fila leída con el JOIN a bird.
type sightingView struct {
	ID       int64
	BirdID   int64
	BirdName string
	Location string
	DateTime *time.Time
}

func toBird(m birdModel) birds.Bird {
	return birds.Bird{
		ID:     m.ID,
		Name:   m.Name,
		Color:  m.Color,
		Weight: m.Weight,
		Height: m.Height,
	}
}

func fromBird(b birds.Bird) birdModel {
	return birdModel{
		ID:     b.ID,
		Name:   b.Name,
		Color:  b.Color,
		Weight: b.Weight,
		Height: b.Height,
	}
}

func toSighting(v sightingView) sightings.Sighting {
	var dt *time.Time
	if v.DateTime != nil {
		t := v.DateTime.UTC()
		dt = &t
	}
	return sightings.Sighting{
		ID:       v.ID,
		BirdID:   v.BirdID,
		BirdName: v.BirdName,
		Location: v.Location,
		DateTime: dt,
	}
}
