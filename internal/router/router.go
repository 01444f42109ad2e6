package router

import (
	"net/http"

	_ "bird-sightings-api/docs"
	"bird-sightings-api/internal/adapters/storage"
	"bird-sightings-api/internal/domain/birds"
	"bird-sightings-api/internal/domain/sightings"
	"bird-sightings-api/internal/middleware"
	"bird-sightings-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si es nil se usa el store in-memory.
	Store *storage.Store

	// Opcional: si es nil no se loguea.
	Logger logger.Logger
}

// @title Bird Sightings API
// @version 1.0
// @description CRUD de aves y sus avistamientos.
// @BasePath /
func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	st := opts.Store
	if st == nil {
		st = storage.NewMemory()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Services por módulo
	birdsSvc := birds.NewService(st.Birds)
	sightingsSvc := sightings.NewService(st.Sightings, st.Tx)

	// Rutas por módulo
	birds.RegisterRoutes(r, birdsSvc, log)
	sightings.RegisterRoutes(r, sightingsSvc, log)

	return r
}
