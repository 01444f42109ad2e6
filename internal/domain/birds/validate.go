package birds

import (
	"strings"

	"bird-sightings-api/internal/platform/apperr"
)

func ValidateCreate(in CreateInput) error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "must not be empty"
	}
	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}

// ValidatePatch: name es opcional en un update, pero si viene no puede ser vacío.
func ValidatePatch(p Patch) error {
	fields := map[string]string{}
	if p.ID <= 0 {
		fields["id"] = "required"
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		fields["name"] = "must not be empty"
	}
	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}
