package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bird-sightings-api/internal/platform/apperr"
	"bird-sightings-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var out errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestWriteError_StatusByKind(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/birds", nil)

	cases := []struct {
		name           string
		err            error
		notFoundStatus int
		want           int
	}{
		{"validation", apperr.Validation(map[string]string{"name": "required"}), 0, http.StatusBadRequest},
		{"not found default", apperr.NotFound("bird not found"), 0, http.StatusNotFound},
		{"not found as bad request", apperr.NotFound("bird not found"), http.StatusBadRequest, http.StatusBadRequest},
		{"storage", apperr.Storage(errors.New("dial tcp: connection refused")), 0, http.StatusInternalServerError},
		{"plain", errors.New("boom"), 0, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, req, logger.Nop(), tc.err, tc.notFoundStatus)
			assert.Equal(t, tc.want, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWriteError_StorageMessageNamesDatabase(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sightings", nil)

	WriteError(rec, req, logger.Nop(), apperr.Storage(errors.New("connection reset")), 0)

	body := decodeErr(t, rec)
	assert.Equal(t, "An error occurred while accessing the database: connection reset", body.Error)
}

func TestWriteError_InternalCarriesIncidentID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sightings", nil)

	WriteError(rec, req, logger.Nop(), errors.New("constraint violated"), 0)

	body := decodeErr(t, rec)
	assert.Equal(t, "internal error", body.Error)
	assert.NotEmpty(t, body.IncidentID)
}

func TestReturnResource(t *testing.T) {
	v, err := ReturnResource(httptest.NewRequest(http.MethodPost, "/birds?returnResource=true", nil))
	require.NoError(t, err)
	assert.True(t, v)

	v, err = ReturnResource(httptest.NewRequest(http.MethodPost, "/birds?returnResource=false", nil))
	require.NoError(t, err)
	assert.False(t, v)

	_, err = ReturnResource(httptest.NewRequest(http.MethodPost, "/birds", nil))
	assert.True(t, apperr.IsValidation(err))

	_, err = ReturnResource(httptest.NewRequest(http.MethodPost, "/birds?returnResource=maybe", nil))
	assert.True(t, apperr.IsValidation(err))
}

func TestDecodeID(t *testing.T) {
	id, err := DecodeID(httptest.NewRequest(http.MethodDelete, "/birds", strings.NewReader("42")))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, body := range []string{"", "null", `"42"`, `{"id":1}`} {
		_, err := DecodeID(httptest.NewRequest(http.MethodDelete, "/birds", strings.NewReader(body)))
		assert.True(t, apperr.IsValidation(err), "body %q", body)
	}
}

func TestWriteResource(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResource(rec, false, map[string]string{"a": "b"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = httptest.NewRecorder()
	WriteResource(rec, true, map[string]string{"a": "b"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"a":"b"}`, rec.Body.String())
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPathParam_DecodesOnce(t *testing.T) {
	cases := []struct {
		name   string
		target string
		param  string
		want   string
	}{
		{"already decoded", "/birds/name/a%2541", "a%41", "a%41"},
		{"space", "/birds/name/Blue%20Jay", "Blue Jay", "Blue Jay"},
		{"escaped slash", "/birds/name/a%2Fb", "a%2Fb", "a/b"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := withURLParam(httptest.NewRequest(http.MethodGet, tc.target, nil), "name", tc.param)
			assert.Equal(t, tc.want, PathParam(req, "name"))
		})
	}
}

func TestWriteError_LogsKind(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Info, Format: logger.FormatJSON, App: "test", Output: &buf})

	rec := httptest.NewRecorder()
	WriteError(rec, httptest.NewRequest(http.MethodGet, "/birds", nil), log, apperr.Storage(errors.New("connection reset")), 0)
	require.NoError(t, log.Sync())

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "storage failure", line["msg"])
	assert.Equal(t, "storage", line["kind"])
}

func TestWritePanic(t *testing.T) {
	rec := httptest.NewRecorder()
	WritePanic(rec, httptest.NewRequest(http.MethodPost, "/sightings", nil), logger.Nop(), "boom", []byte("stack"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErr(t, rec)
	assert.Equal(t, "internal error", body.Error)
	assert.NotEmpty(t, body.IncidentID)
}
