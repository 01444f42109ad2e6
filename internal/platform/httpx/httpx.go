// Package httpx reúne los helpers de borde HTTP compartidos por los módulos
// de dominio: codificación JSON, parámetros comunes y el mapeo error→status.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"bird-sightings-api/internal/platform/apperr"
	"bird-sightings-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error      string            `json:"error"`
	Fields     map[string]string `json:"fields,omitempty"`
	IncidentID string            `json:"incident_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteResource responde 200 y solo incluye el cuerpo si el cliente lo pidió
// con returnResource=true.
func WriteResource(w http.ResponseWriter, returnResource bool, v any) {
	if !returnResource {
		w.WriteHeader(http.StatusOK)
		return
	}
	WriteJSON(w, http.StatusOK, v)
}

// WriteError es el único lugar donde un error se traduce a status HTTP.
// notFoundStatus permite que update responda 400 y delete/get 404.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error, notFoundStatus int) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = &apperr.Error{Kind: apperr.KindInternal, Message: "internal error", Cause: err}
	}

	fields := map[string]any{
		"method":     r.Method,
		"path":       r.URL.Path,
		"request_id": chimw.GetReqID(r.Context()),
		"kind":       ae.Kind.String(),
	}

	switch ae.Kind {
	case apperr.KindValidation:
		WriteJSON(w, http.StatusBadRequest, errorResponse{Error: ae.Message, Fields: ae.Fields})

	case apperr.KindNotFound:
		if notFoundStatus == 0 {
			notFoundStatus = http.StatusNotFound
		}
		WriteJSON(w, notFoundStatus, errorResponse{Error: ae.Message})

	case apperr.KindStorage:
		fields["error"] = err
		log.Error("storage failure", fields)

		msg := "An error occurred while accessing the database"
		if ae.Cause != nil {
			msg += ": " + ae.Cause.Error()
		}
		WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: msg})

	default:
		fields["error"] = err
		writeInternal(w, log, "unhandled error", fields)
	}
}

// WritePanic responde el 500 de un panic recuperado; loguea una sola línea con el stack.
func WritePanic(w http.ResponseWriter, r *http.Request, log logger.Logger, rec any, stack []byte) {
	err := apperr.Internal("panic: %v", rec)
	writeInternal(w, log, "panic recovered", map[string]any{
		"method":     r.Method,
		"path":       r.URL.Path,
		"request_id": chimw.GetReqID(r.Context()),
		"kind":       err.Kind.String(),
		"error":      err,
		"stack":      string(stack),
	})
}

func writeInternal(w http.ResponseWriter, log logger.Logger, msg string, fields map[string]any) {
	incident := uuid.NewString()
	fields["incident_id"] = incident
	log.Error(msg, fields)

	WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", IncidentID: incident})
}

// ReturnResource lee el query param obligatorio returnResource.
func ReturnResource(r *http.Request) (bool, error) {
	q := r.URL.Query()
	if !q.Has("returnResource") {
		return false, apperr.Validation(map[string]string{"returnResource": "required"})
	}
	v, err := strconv.ParseBool(strings.TrimSpace(q.Get("returnResource")))
	if err != nil {
		return false, apperr.Validation(map[string]string{"returnResource": "must be true or false"})
	}
	return v, nil
}

func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v); err != nil {
		return apperr.Validation(map[string]string{"body": "invalid json"})
	}
	return nil
}

// DecodeID lee un cuerpo que es solo un número JSON (p.ej. `42`).
func DecodeID(r *http.Request) (int64, error) {
	var id *int64
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&id); err != nil {
		return 0, apperr.Validation(map[string]string{"id": "body must be a numeric id"})
	}
	if id == nil {
		return 0, apperr.Validation(map[string]string{"id": "required"})
	}
	return *id, nil
}

// PathParam devuelve el parámetro de ruta decodificado una sola vez. chi rutea
// sobre RawPath cuando existe (p.ej. con %2F), y ahí el valor llega escapado.
func PathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
