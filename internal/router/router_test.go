package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bird-sightings-api/internal/adapters/storage"
	"bird-sightings-api/internal/adapters/storage/gormstore"
	"bird-sightings-api/internal/platform/logger"
	"bird-sightings-api/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type birdJSON struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
}

type sightingJSON struct {
	ID       int64   `json:"id"`
	BirdName string  `json:"birdName"`
	Location string  `json:"location"`
	DateTime *string `json:"dateTime"`
}

// backends corre cada test sobre memoria y sobre gorm+SQLite.
func backends(t *testing.T) map[string]func(t *testing.T) *storage.Store {
	t.Helper()
	return map[string]func(t *testing.T) *storage.Store{
		"memory": func(t *testing.T) *storage.Store {
			return storage.NewMemory()
		},
		"sqlite": func(t *testing.T) *storage.Store {
			st, err := gormstore.OpenSQLite(context.Background(), gormstore.MemorySQLiteDSN, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = st.Close() })
			return storage.FromGorm("sqlite", st)
		},
	}
}

func newServer(t *testing.T, st *storage.Store) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{Store: st, Logger: logger.Nop()}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_BirdLifecycle(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ts := newServer(t, open(t))

			// 1) Crear ave con returnResource=true
			st, body := doReq(t, ts.URL, "POST", "/birds?returnResource=true", map[string]any{
				"name": "Robin", "color": "Red", "weight": 20.0, "height": 15.0,
			})
			require.Equal(t, http.StatusOK, st, string(body))

			var robin birdJSON
			require.NoError(t, json.Unmarshal(body, &robin))
			assert.Positive(t, robin.ID)
			assert.Equal(t, birdJSON{ID: robin.ID, Name: "Robin", Color: "Red", Weight: 20, Height: 15}, robin)

			// 2) Update parcial: solo color
			st, body = doReq(t, ts.URL, "POST", "/birds/update?returnResource=true", map[string]any{
				"id": robin.ID, "color": "Orange",
			})
			require.Equal(t, http.StatusOK, st, string(body))

			var updated birdJSON
			require.NoError(t, json.Unmarshal(body, &updated))
			assert.Equal(t, birdJSON{ID: robin.ID, Name: "Robin", Color: "Orange", Weight: 20, Height: 15}, updated)

			// 3) Get por nombre y por color
			st, _ = doReq(t, ts.URL, "GET", "/birds/name/Robin", nil)
			assert.Equal(t, http.StatusOK, st)
			st, _ = doReq(t, ts.URL, "GET", "/birds/color/Orange", nil)
			assert.Equal(t, http.StatusOK, st)

			// 4) Borrar y verificar 404
			st, body = doRaw(t, ts.URL, "DELETE", "/birds", jsonNumber(robin.ID))
			require.Equal(t, http.StatusNoContent, st, string(body))

			st, _ = doReq(t, ts.URL, "GET", "/birds/name/Robin", nil)
			assert.Equal(t, http.StatusNotFound, st)

			st, _ = doRaw(t, ts.URL, "DELETE", "/birds", jsonNumber(robin.ID))
			assert.Equal(t, http.StatusNotFound, st)
		})
	}
}

func TestHTTP_ReturnResourceFlag(t *testing.T) {
	ts := newServer(t, storage.NewMemory())

	st, body := doReq(t, ts.URL, "POST", "/birds?returnResource=false", map[string]any{"name": "Wren"})
	assert.Equal(t, http.StatusOK, st)
	assert.Empty(t, body)

	st, _ = doReq(t, ts.URL, "POST", "/birds", map[string]any{"name": "Wren"})
	assert.Equal(t, http.StatusBadRequest, st)

	st, _ = doReq(t, ts.URL, "POST", "/birds?returnResource=yes", map[string]any{"name": "Wren"})
	assert.Equal(t, http.StatusBadRequest, st)

	// Solo se creó el primero.
	st, body = doReq(t, ts.URL, "GET", "/birds?name=Wren", nil)
	require.Equal(t, http.StatusOK, st)
	var list []birdJSON
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 1)
}

func TestHTTP_BirdErrors(t *testing.T) {
	ts := newServer(t, storage.NewMemory())

	// Nombre vacío
	st, _ := doReq(t, ts.URL, "POST", "/birds?returnResource=true", map[string]any{"color": "Red"})
	assert.Equal(t, http.StatusBadRequest, st)

	// Update de id inexistente => 400
	st, _ = doReq(t, ts.URL, "POST", "/birds/update?returnResource=true", map[string]any{"id": 999, "color": "Red"})
	assert.Equal(t, http.StatusBadRequest, st)

	// JSON inválido
	st, _ = doRaw(t, ts.URL, "POST", "/birds?returnResource=true", "{")
	assert.Equal(t, http.StatusBadRequest, st)

	// Delete con cuerpo no numérico
	st, _ = doRaw(t, ts.URL, "DELETE", "/birds", `{"id":1}`)
	assert.Equal(t, http.StatusBadRequest, st)

	// Sin coincidencias => 200 + []
	st, body := doReq(t, ts.URL, "GET", "/birds?color=Purple", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.JSONEq(t, `[]`, string(body))
}

func TestHTTP_SightingUpsertAndCascade(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ts := newServer(t, open(t))

			// 1) Avistamiento de un ave que no existe => se crea "Finch"
			st, body := doReq(t, ts.URL, "POST", "/sightings?returnResource=true", map[string]any{
				"birdName": "Finch", "location": "Park", "dateTime": "2024-05-01T08:30:00",
			})
			require.Equal(t, http.StatusOK, st, string(body))

			var s sightingJSON
			require.NoError(t, json.Unmarshal(body, &s))
			assert.Equal(t, "Finch", s.BirdName)
			require.NotNil(t, s.DateTime)
			assert.Equal(t, "2024-05-01T08:30:00", *s.DateTime)

			finches := listBirds(t, ts.URL, "/birds?name=Finch")
			require.Len(t, finches, 1)
			assert.Zero(t, finches[0].Weight)
			assert.Zero(t, finches[0].Height)

			// 2) Segundo avistamiento: no crea otra ave
			st, _ = doReq(t, ts.URL, "POST", "/sightings?returnResource=false", map[string]any{
				"birdName": "Finch", "location": "Lake",
			})
			require.Equal(t, http.StatusOK, st)
			assert.Len(t, listBirds(t, ts.URL, "/birds?name=Finch"), 1)
			assert.Len(t, listSightings(t, ts.URL, "/sightings/birdname/Finch"), 2)

			// 3) Borrar el ave borra sus avistamientos
			st, _ = doRaw(t, ts.URL, "DELETE", "/birds", jsonNumber(finches[0].ID))
			require.Equal(t, http.StatusNoContent, st)
			assert.Empty(t, listSightings(t, ts.URL, "/sightings/birdname/Finch"))
			assert.Empty(t, listSightings(t, ts.URL, "/sightings"))
		})
	}
}

func TestHTTP_SightingUpdateAndFilters(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ts := newServer(t, open(t))

			for _, in := range []map[string]any{
				{"birdName": "Owl", "location": "Forest", "dateTime": "2024-05-01T00:00:00"},
				{"birdName": "Owl", "location": "Lake", "dateTime": "2024-05-31T00:00:00"},
				{"birdName": "Heron", "location": "Lake", "dateTime": "2024-06-01T00:00:00"},
			} {
				st, body := doReq(t, ts.URL, "POST", "/sightings?returnResource=true", in)
				require.Equal(t, http.StatusOK, st, string(body))
			}

			assert.Len(t, listSightings(t, ts.URL, "/sightings/location/Lake"), 2)
			assert.Len(t, listSightings(t, ts.URL, "/sightings/datetime/2024-05-01/2024-05-31T00:00:00"), 2)
			assert.Empty(t, listSightings(t, ts.URL, "/sightings/datetime/2024-06-02/2024-06-30"))

			st, _ := doReq(t, ts.URL, "GET", "/sightings/datetime/yesterday/today", nil)
			assert.Equal(t, http.StatusBadRequest, st)

			all := listSightings(t, ts.URL, "/sightings")
			require.Len(t, all, 3)
			first := all[0]

			// Update sin location ni dateTime => quedan vacíos
			st, body := doReq(t, ts.URL, "POST", "/sightings/update?returnResource=true", map[string]any{
				"id": first.ID, "birdName": "Owl",
			})
			require.Equal(t, http.StatusOK, st, string(body))

			var got sightingJSON
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, "", got.Location)
			assert.Nil(t, got.DateTime)

			// Update de id inexistente => 400
			st, _ = doReq(t, ts.URL, "POST", "/sightings/update?returnResource=true", map[string]any{
				"id": 999, "birdName": "Ghost",
			})
			assert.Equal(t, http.StatusBadRequest, st)
			assert.Empty(t, listBirds(t, ts.URL, "/birds?name=Ghost"))

			// Delete
			st, _ = doRaw(t, ts.URL, "DELETE", "/sightings", jsonNumber(first.ID))
			assert.Equal(t, http.StatusNoContent, st)
			st, _ = doRaw(t, ts.URL, "DELETE", "/sightings", jsonNumber(first.ID))
			assert.Equal(t, http.StatusNotFound, st)
		})
	}
}

func TestHTTP_PathParamsAreUnescaped(t *testing.T) {
	ts := newServer(t, storage.NewMemory())

	st, _ := doReq(t, ts.URL, "POST", "/sightings?returnResource=false", map[string]any{
		"birdName": "Blue Jay", "location": "Central Park",
	})
	require.Equal(t, http.StatusOK, st)

	st, _ = doReq(t, ts.URL, "GET", "/birds/name/"+url.PathEscape("Blue Jay"), nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Len(t, listSightings(t, ts.URL, "/sightings/location/"+url.PathEscape("Central Park")), 1)
}

func TestHTTP_PathParamsAreDecodedOnce(t *testing.T) {
	ts := newServer(t, storage.NewMemory())

	for _, name := range []string{"a%41", "aA", "a/b"} {
		st, body := doReq(t, ts.URL, "POST", "/birds?returnResource=false", map[string]any{"name": name})
		require.Equal(t, http.StatusOK, st, string(body))
	}

	cases := []struct {
		path string
		want string
	}{
		{"/birds/name/a%2541", "a%41"},
		{"/birds/name/aA", "aA"},
		{"/birds/name/a%2Fb", "a/b"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			st, body := doReq(t, ts.URL, "GET", tc.path, nil)
			require.Equal(t, http.StatusOK, st, string(body))

			var got birdJSON
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tc.want, got.Name)
		})
	}
}

func TestHTTP_ClosedStoreIsStorageError(t *testing.T) {
	gs, err := gormstore.OpenSQLite(context.Background(), gormstore.MemorySQLiteDSN, logger.Nop())
	require.NoError(t, err)
	st := storage.FromGorm("sqlite", gs)
	require.NoError(t, st.Close())

	ts := newServer(t, st)

	code, body := doReq(t, ts.URL, "GET", "/birds", nil)
	assert.Equal(t, http.StatusInternalServerError, code)

	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "An error occurred while accessing the database: sql: database is closed", out["error"])
	assert.Empty(t, out["incident_id"])
}

func TestHTTP_HealthAndSwagger(t *testing.T) {
	ts := newServer(t, nil)

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "ok", string(body))

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), "/sightings/datetime/{start}/{end}")
}

// ---- helpers ----

func listBirds(t *testing.T, baseURL, path string) []birdJSON {
	t.Helper()
	st, body := doReq(t, baseURL, "GET", path, nil)
	require.Equal(t, http.StatusOK, st, string(body))

	var out []birdJSON
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func listSightings(t *testing.T, baseURL, path string) []sightingJSON {
	t.Helper()
	st, body := doReq(t, baseURL, "GET", path, nil)
	require.Equal(t, http.StatusOK, st, string(body))

	var out []sightingJSON
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func jsonNumber(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var raw string
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		raw = string(b)
	}
	return doRaw(t, baseURL, method, path, raw)
}

func doRaw(t *testing.T, baseURL, method, path, body string) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	respBody, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, bytes.TrimSpace(respBody)
}
