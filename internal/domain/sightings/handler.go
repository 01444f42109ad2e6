package sightings

import (
	"net/http"
	"time"

	"bird-sightings-api/internal/platform/httpx"
	"bird-sightings-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	log = log.With(map[string]any{"module": "sightings"})

	r.Route("/sightings", func(sr chi.Router) {
		sr.Get("/", listSightingsHandler(svc, log))
		sr.Get("/location/{location}", listByLocationHandler(svc, log))
		sr.Get("/birdname/{birdName}", listByBirdNameHandler(svc, log))
		sr.Get("/datetime/{start}/{end}", listByDateRangeHandler(svc, log))

		sr.Post("/", createSightingHandler(svc, log))
		sr.Post("/update", updateSightingHandler(svc, log))
		sr.Delete("/", deleteSightingHandler(svc, log))
	})
}

// sightingResponse representa un avistamiento devuelto por la API.
type sightingResponse struct {
	ID       int64   `json:"id"`
	BirdName string  `json:"birdName"`
	Location string  `json:"location"`
	DateTime *string `json:"dateTime" example:"2024-05-01T08:30:00"`
}

// createSightingRequest: si birdName no existe se crea el ave.
type createSightingRequest struct {
	BirdName string  `json:"birdName"`
	Location string  `json:"location"`
	DateTime *string `json:"dateTime" example:"2024-05-01T08:30:00"`
}

type updateSightingRequest struct {
	ID       *int64  `json:"id"`
	BirdName string  `json:"birdName"`
	Location string  `json:"location"`
	DateTime *string `json:"dateTime" example:"2024-05-01T08:30:00"`
}

// listSightingsHandler godoc
// @Summary Listar avistamientos
// @Tags sightings
// @Produce json
// @Success 200 {array} sightingResponse
// @Router /sightings [get]
func listSightingsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		writeList(w, r, log, items, err)
	}
}

// listByLocationHandler godoc
// @Summary Listar avistamientos por ubicación
// @Tags sightings
// @Produce json
// @Param location path string true "Ubicación exacta"
// @Success 200 {array} sightingResponse
// @Router /sightings/location/{location} [get]
func listByLocationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByLocation(r.Context(), httpx.PathParam(r, "location"))
		writeList(w, r, log, items, err)
	}
}

// listByBirdNameHandler godoc
// @Summary Listar avistamientos por nombre de ave
// @Tags sightings
// @Produce json
// @Param birdName path string true "Nombre del ave"
// @Success 200 {array} sightingResponse
// @Router /sightings/birdname/{birdName} [get]
func listByBirdNameHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByBirdName(r.Context(), httpx.PathParam(r, "birdName"))
		writeList(w, r, log, items, err)
	}
}

// listByDateRangeHandler godoc
// @Summary Listar avistamientos entre dos fechas
// @Description Ambos extremos son inclusivos. Acepta 2006-01-02T15:04:05, RFC3339 o 2006-01-02 (medianoche).
// @Tags sightings
// @Produce json
// @Param start path string true "Inicio del rango"
// @Param end path string true "Fin del rango"
// @Success 200 {array} sightingResponse
// @Failure 400 {object} httpx.errorResponse "fecha inválida"
// @Router /sightings/datetime/{start}/{end} [get]
func listByDateRangeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, err := ParseDateTime("start", httpx.PathParam(r, "start"))
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}
		end, err := ParseDateTime("end", httpx.PathParam(r, "end"))
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}

		items, err := svc.ListByDateRange(r.Context(), start, end)
		writeList(w, r, log, items, err)
	}
}

// createSightingHandler godoc
// @Summary Registrar avistamiento
// @Description Si no existe un ave con ese nombre se crea una (solo con nombre) en la misma transacción.
// @Tags sightings
// @Accept json
// @Produce json
// @Param returnResource query bool true "Si es true, la respuesta incluye el avistamiento persistido"
// @Param payload body createSightingRequest true "birdName obligatorio"
// @Success 200 {object} sightingResponse
// @Failure 400 {object} httpx.errorResponse "invalid input"
// @Router /sightings [post]
func createSightingHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		returnResource, err := httpx.ReturnResource(r)
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}

		var req createSightingRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}

		dt, err := parseOptionalDateTime(req.DateTime)
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}

		s, err := svc.Create(r.Context(), CreateInput{
			BirdName: req.BirdName,
			Location: req.Location,
			DateTime: dt,
		})
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}

		log.Debug("sighting created", map[string]any{"sighting_id": s.ID, "bird_id": s.BirdID})
		httpx.WriteResource(w, returnResource, toSightingResponse(s))
	}
}

// updateSightingHandler godoc
// @Summary Actualizar avistamiento
// @Description Sobreescribe birdName, location y dateTime (un campo ausente queda vacío). Un id inexistente responde 400.
// @Tags sightings
// @Accept json
// @Produce json
// @Param returnResource query bool true "Si es true, la respuesta incluye el avistamiento actualizado"
// @Param payload body updateSightingRequest true "id y birdName obligatorios"
// @Success 200 {object} sightingResponse
// @Failure 400 {object} httpx.errorResponse "invalid input / sighting not found"
// @Router /sightings/update [post]
func updateSightingHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		returnResource, err := httpx.ReturnResource(r)
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}

		var req updateSightingRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}

		dt, err := parseOptionalDateTime(req.DateTime)
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			BirdName: req.BirdName,
			Location: req.Location,
			DateTime: dt,
		}
		if req.ID != nil {
			in.ID = *req.ID
		}

		s, err := svc.Update(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, r, log, err, http.StatusBadRequest)
			return
		}

		httpx.WriteResource(w, returnResource, toSightingResponse(s))
	}
}

// deleteSightingHandler godoc
// @Summary Borrar avistamiento
// @Description El cuerpo es solo el id numérico.
// @Tags sightings
// @Accept json
// @Param payload body integer true "ID del avistamiento"
// @Success 204
// @Failure 400 {object} httpx.errorResponse "invalid input"
// @Failure 404 {object} httpx.errorResponse "sighting not found"
// @Router /sightings [delete]
func deleteSightingHandler(svc *Service, log logger.Logger) http.HandlerFunc {
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

		log.Debug("sighting deleted", map[string]any{"sighting_id": id})
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeList(w http.ResponseWriter, r *http.Request, log logger.Logger, items []Sighting, err error) {
	if err != nil {
		httpx.WriteError(w, r, log, err, http.StatusNotFound)
		return
	}

	out := make([]sightingResponse, 0, len(items))
	for _, s := range items {
		out = append(out, toSightingResponse(s))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func toSightingResponse(s Sighting) sightingResponse {
	return sightingResponse{
		ID:       s.ID,
		BirdName: s.BirdName,
		Location: s.Location,
		DateTime: FormatDateTime(s.DateTime),
	}
}

func parseOptionalDateTime(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := ParseDateTime("dateTime", *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
