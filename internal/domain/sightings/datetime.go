package sightings

import (
	"strings"
	"time"

	"bird-sightings-api/internal/platform/apperr"
)

// DateTimeLayout es el formato de salida de dateTime (fecha-hora local ISO, sin zona).
const DateTimeLayout = "2006-01-02T15:04:05"

var inputLayouts = []string{
	DateTimeLayout,
	time.RFC3339Nano,
	"2006-01-02",
}

// ParseDateTime acepta DateTimeLayout, RFC3339 o una fecha sola (medianoche).
// Los valores sin zona se interpretan como UTC.
func ParseDateTime(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Normalize(t), nil
		}
	}
	return time.Time{}, apperr.Validation(map[string]string{
		field: "must be " + DateTimeLayout + ", RFC3339 or 2006-01-02",
	})
}

func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

func normalizePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := Normalize(*t)
	return &n
}

func FormatDateTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(DateTimeLayout)
	return &s
}
