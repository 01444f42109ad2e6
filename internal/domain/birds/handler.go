package birds

import (
	"net/http"
	"net/url"
	"strings"

	"bird-sightings-api/internal/platform/httpx"
	"bird-sightings-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	log = log.With(map[string]any{"module": "birds"})

	r.Route("/birds", func(br chi.Router) {
		br.Get("/", listBirdsHandler(svc, log))
		br.Get("/name/{name}", getBirdByNameHandler(svc, log))
		br.Get("/color/{color}", getBirdByColorHandler(svc, log))

		br.Post("/", createBirdHandler(svc, log))
		br.Post("/update", updateBirdHandler(svc, log))
		br.Delete("/", deleteBirdHandler(svc, log))
	})
}

// birdResponse es la representación pública de un ave.
type birdResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
}

// createBirdRequest: weight/height en 0 si no vienen.
type createBirdRequest struct {
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
}

// updateBirdRequest usa punteros: nil = no tocar.
type updateBirdRequest struct {
	ID     *int64   `json:"id"`
	Name   *string  `json:"name"`
	Color  *string  `json:"color"`
	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`
}

// listBirdsHandler godoc
// @Summary Listar aves
// @Description Devuelve las aves que cumplen ambos filtros (si vienen). Sin filtros devuelve todas; sin coincidencias devuelve un array vacío.
// @Tags birds
// @Produce json
// @Param name query string false "Nombre exacto"
// @Param color query string false "Color exacto"
// @Success 200 {array} birdResponse
// @Failure 500 {object} httpx.errorResponse
// @Router /birds [get]
func listBirdsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		items, err := svc.ListBirds(r.Context(), optionalParam(q, "name"), optionalParam(q, "color"))
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusNotFound)
			return
		}

		out := make([]birdResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBirdResponse(b))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getBirdByNameHandler godoc
// @Summary Obtener ave por nombre
// @Tags birds
// @Produce json
// @Param name path string true "Nombre del ave"
// @Success 200 {object} birdResponse
// @Failure 404 {object} httpx.errorResponse "bird not found"
// @Router /birds/name/{name} [get]
func getBirdByNameHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByName(r.Context(), httpx.PathParam(r, "name"))
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toBirdResponse(b))
	}
}

// getBirdByColorHandler godoc
// @Summary Obtener ave por color
// @Description Si varias aves comparten color devuelve la de menor id.
// @Tags birds
// @Produce json
// @Param color path string true "Color del ave"
// @Success 200 {object} birdResponse
// @Failure 404 {object} httpx.errorResponse "bird not found"
// @Router /birds/color/{color} [get]
func getBirdByColorHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByColor(r.Context(), httpx.PathParam(r, "color"))
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toBirdResponse(b))
	}
}

// createBirdHandler godoc
// @Summary Crear ave
// @Tags birds
// @Accept json
// @Produce json
// @Param returnResource query bool true "Si es true, la respuesta incluye el ave persistida"
// @Param payload body createBirdRequest true "Datos del ave; name es obligatorio"
// @Success 200 {object} birdResponse
// @Failure 400 {object} httpx.errorResponse "invalid input"
// @Router /birds [post]
func createBirdHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		returnResource, err := httpx.ReturnResource(r)
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}

		var req createBirdRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}

		b, err := svc.Create(r.Context(), CreateInput{
			Name:   req.Name,
			Color:  req.Color,
			Weight: req.Weight,
			Height: req.Height,
		})
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}

		log.Debug("bird created", map[string]any{"bird_id": b.ID})
		httpx.WriteResource(w, returnResource, toBirdResponse(b))
	}
}

// updateBirdHandler godoc
// @Summary Actualizar ave
// @Description Update parcial: solo se sobreescriben los campos presentes (no null). Un id inexistente responde 400.
// @Tags birds
// @Accept json
// @Produce json
// @Param returnResource query bool true "Si es true, la respuesta incluye el ave actualizada"
// @Param payload body updateBirdRequest true "id obligatorio; el resto opcional"
// @Success 200 {object} birdResponse
// @Failure 400 {object} httpx.errorResponse "invalid input / bird not found"
// @Router /birds/update [post]
func updateBirdHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		returnResource, err := httpx.ReturnResource(r)
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}

		var req updateBirdRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}

		p := Patch{
			Name:   req.Name,
			Color:  req.Color,
			Weight: req.Weight,
			Height: req.Height,
		}
		if req.ID != nil {
			p.ID = *req.ID
		}

		b, err := svc.Update(r.Context(), p)
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}

		httpx.WriteResource(w, returnResource, toBirdResponse(b))
	}
}

// deleteBirdHandler godoc
// @Summary Borrar ave
// @Description Borra el ave y todos sus avistamientos. El cuerpo es solo el id numérico.
// @Tags birds
// @Accept json
// @Param payload body integer true "ID del ave"
// @Success 204
// @Failure 400 {object} httpx.errorResponse "invalid input"
// @Failure 404 {object} httpx.errorResponse "bird not found"
// @Router /birds [delete]
func deleteBirdHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.DecodeID(r)
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusNotFound)
			return
		}

		if _, err := svc.Delete(r.Context(), id); err != nil {
			httpx.WriteError(w, r, log, err, http.StatusNotFound)
			return
		}

		log.Debug("bird deleted", map[string]any{"bird_id": id})
		w.WriteHeader(http.StatusNoContent)
	}
}

func toBirdResponse(b Bird) birdResponse {
	return birdResponse{
		ID:     b.ID,
		Name:   b.Name,
		Color:  b.Color,
		Weight: b.Weight,
		Height: b.Height,
	}
}

// optionalParam: ausente o vacío = sin filtro.
func optionalParam(q url.Values, key string) *string {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	return &v
}
