package sightings

import (
	"strings"

	"bird-sightings-api/internal/platform/apperr"
)

func ValidateCreate(in CreateInput) error {
	fields := map[string]string{}
	if strings.TrimSpace(in.BirdName) == "" {
		fields["birdName"] = "must not be empty"
	}
	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}

func ValidateUpdate(in UpdateInput) error {
	fields := map[string]string{}
	if in.ID <= 0 {
		fields["id"] = "required"
	}
	if strings.TrimSpace(in.BirdName) == "" {
		fields["birdName"] = "must not be empty"
	}
	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}
