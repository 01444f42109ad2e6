package memory

import (
	"context"
	"sort"

	"bird-sightings-api/internal/domain/birds"
)

type birdRepo struct {
	lk locker
	st *Store
}

func (r *birdRepo) sortedLocked() []birds.Bird {
	out := make([]birds.Bird, 0, len(r.st.d.birds))
	for _, b := range r.st.d.birds {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *birdRepo) List(ctx context.Context, f birds.Filter) ([]birds.Bird, error) {
	r.lk.RLock()
	defer r.lk.RUnlock()

	out := make([]birds.Bird, 0)
	for _, b := range r.sortedLocked() {
		if f.Name != nil && b.Name != *f.Name {
			continue
		}
		if f.Color != nil && b.Color != *f.Color {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *birdRepo) GetByID(ctx context.Context, id int64) (birds.Bird, error) {
	r.lk.RLock()
	defer r.lk.RUnlock()

	b, ok := r.st.d.birds[id]
	if !ok {
		return birds.Bird{}, birds.ErrNotFound
	}
	return b, nil
}

func (r *birdRepo) FindByName(ctx context.Context, name string) (birds.Bird, error) {
	return r.first(func(b birds.Bird) bool { return b.Name == name })
}

func (r *birdRepo) FindByColor(ctx context.Context, color string) (birds.Bird, error) {
	return r.first(func(b birds.Bird) bool { return b.Color == color })
}

// first devuelve la coincidencia de menor id.
func (r *birdRepo) first(match func(birds.Bird) bool) (birds.Bird, error) {
	r.lk.RLock()
	defer r.lk.RUnlock()

	for _, b := range r.sortedLocked() {
		if match(b) {
			return b, nil
		}
	}
	return birds.Bird{}, birds.ErrNotFound
}

func (r *birdRepo) Create(ctx context.Context, b birds.Bird) (birds.Bird, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	r.st.d.nextBirdID++
	b.ID = r.st.d.nextBirdID
	r.st.d.birds[b.ID] = b
	return b, nil
}

func (r *birdRepo) Update(ctx context.Context, b birds.Bird) (birds.Bird, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	if _, ok := r.st.d.birds[b.ID]; !ok {
		return birds.Bird{}, birds.ErrNotFound
	}
	r.st.d.birds[b.ID] = b
	return b, nil
}

// Delete borra el ave y sus avistamientos bajo el mismo lock.
func (r *birdRepo) Delete(ctx context.Context, id int64) error {
	r.lk.Lock()
	defer r.lk.Unlock()

	if _, ok := r.st.d.birds[id]; !ok {
		return birds.ErrNotFound
	}
	for sid, row := range r.st.d.sightings {
		if row.BirdID == id {
			delete(r.st.d.sightings, sid)
		}
	}
	delete(r.st.d.birds, id)
	return nil
}
