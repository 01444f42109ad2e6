package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	"bird-sightings-api/internal/domain/sightings"
)

var errUnknownBird = errors.New("memory: sighting references unknown bird")

type sightingRepo struct {
	lk locker
	st *Store
}

func (r *sightingRepo) toSighting(row sightingRow) sightings.Sighting {
	return sightings.Sighting{
		ID:       row.ID,
		BirdID:   row.BirdID,
		BirdName: r.st.d.birds[row.BirdID].Name,
		Location: row.Location,
		DateTime: copyTime(row.DateTime),
	}
}

func (r *sightingRepo) filter(match func(sightingRow) bool) []sightings.Sighting {
	r.lk.RLock()
	defer r.lk.RUnlock()

	rows := make([]sightingRow, 0)
	for _, row := range r.st.d.sightings {
		if match(row) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	out := make([]sightings.Sighting, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.toSighting(row))
	}
	return out
}

func (r *sightingRepo) List(ctx context.Context) ([]sightings.Sighting, error) {
	return r.filter(func(sightingRow) bool { return true }), nil
}

func (r *sightingRepo) ListByLocation(ctx context.Context, location string) ([]sightings.Sighting, error) {
	return r.filter(func(row sightingRow) bool { return row.Location == location }), nil
}

func (r *sightingRepo) ListByBirdName(ctx context.Context, birdName string) ([]sightings.Sighting, error) {
	return r.filter(func(row sightingRow) bool {
		return r.st.d.birds[row.BirdID].Name == birdName
	}), nil
}

func (r *sightingRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]sightings.Sighting, error) {
	return r.filter(func(row sightingRow) bool {
		if row.DateTime == nil {
			return false
		}
		return !row.DateTime.Before(start) && !row.DateTime.After(end)
	}), nil
}

func (r *sightingRepo) GetByID(ctx context.Context, id int64) (sightings.Sighting, error) {
	r.lk.RLock()
	defer r.lk.RUnlock()

	row, ok := r.st.d.sightings[id]
	if !ok {
		return sightings.Sighting{}, sightings.ErrNotFound
	}
	return r.toSighting(row), nil
}

func (r *sightingRepo) Create(ctx context.Context, s sightings.Sighting) (sightings.Sighting, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	if _, ok := r.st.d.birds[s.BirdID]; !ok {
		return sightings.Sighting{}, errUnknownBird
	}

	r.st.d.nextSightingID++
	row := sightingRow{
		ID:       r.st.d.nextSightingID,
		BirdID:   s.BirdID,
		Location: s.Location,
		DateTime: copyTime(s.DateTime),
	}
	r.st.d.sightings[row.ID] = row
	return r.toSighting(row), nil
}

func (r *sightingRepo) Update(ctx context.Context, s sightings.Sighting) (sightings.Sighting, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	if _, ok := r.st.d.sightings[s.ID]; !ok {
		return sightings.Sighting{}, sightings.ErrNotFound
	}
	if _, ok := r.st.d.birds[s.BirdID]; !ok {
		return sightings.Sighting{}, errUnknownBird
	}

	row := sightingRow{
		ID:       s.ID,
		BirdID:   s.BirdID,
		Location: s.Location,
		DateTime: copyTime(s.DateTime),
	}
	r.st.d.sightings[row.ID] = row
	return r.toSighting(row), nil
}

func (r *sightingRepo) Delete(ctx context.Context, id int64) error {
	r.lk.Lock()
	defer r.lk.Unlock()

	if _, ok := r.st.d.sightings[id]; !ok {
		return sightings.ErrNotFound
	}
	delete(r.st.d.sightings, id)
	return nil
}
