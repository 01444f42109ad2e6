package memory

import (
	"context"
	"sync"
	"time"

	"bird-sightings-api/internal/domain/birds"
	"bird-sightings-api/internal/domain/sightings"
)

// Store guarda aves y avistamientos en memoria (modo dev y tests).
// Un único lock cubre ambas tablas para que el cascade y las transacciones
// sean atómicos.
type Store struct {
	mu sync.RWMutex
	d  *data
}

type data struct {
	birds     map[int64]birds.Bird
	sightings map[int64]sightingRow

	nextBirdID     int64
	nextSightingID int64
}

// sightingRow es lo que se persiste: el nombre del ave se lee al consultar.
type sightingRow struct {
	ID       int64
	BirdID   int64
	Location string
	DateTime *time.Time
}

func NewStore() *Store {
	return &Store{d: newData()}
}

func newData() *data {
	return &data{
		birds:     make(map[int64]birds.Bird),
		sightings: make(map[int64]sightingRow),
	}
}

func (d *data) clone() *data {
	out := newData()
	for k, v := range d.birds {
		out.birds[k] = v
	}
	for k, v := range d.sightings {
		out.sightings[k] = v
	}
	out.nextBirdID = d.nextBirdID
	out.nextSightingID = d.nextSightingID
	return out
}

func (s *Store) Birds() birds.Repository {
	return &birdRepo{lk: &s.mu, st: s}
}

func (s *Store) Sightings() sightings.Repository {
	return &sightingRepo{lk: &s.mu, st: s}
}

// WithinTx toma el lock de escritura durante fn y restaura el snapshot si fn falla.
func (s *Store) WithinTx(ctx context.Context, fn sightings.TxFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.d.clone()

	bw := &birdRepo{lk: noopLocker{}, st: s}
	sr := &sightingRepo{lk: noopLocker{}, st: s}

	if err := fn(ctx, bw, sr); err != nil {
		s.d = snapshot
		return err
	}
	return nil
}

// locker permite reutilizar los repos dentro de WithinTx, donde el lock ya está tomado.
type locker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
