package sightings

import "time"

// Sighting es un avistamiento de un ave. BirdName no se guarda en la fila:
// se lee del ave dueña (BirdID).
type Sighting struct {
	ID     int64
	BirdID int64

	BirdName string
	Location string

	// DateTime es opcional; siempre en UTC y truncado a segundos.
	DateTime *time.Time
}
