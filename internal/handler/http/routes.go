package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(gzipLevel, gzipContentTypes...))
	router.Use(withGZipRequest)

	// routes without authorization
	router.Get("/health", h.health)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		// inspections
		r.With(h.withIntegrityCheck).Post("/inspecciones", h.createInspection)
		r.With(h.withIntegrityCheck).Post("/inspecciones/sync", h.syncInspections)
		r.Get("/inspecciones/tecnico/{id}", h.listTechnicianInspections)
		r.Get("/inspecciones/supervisor/{id}", h.listSupervisorInspections)
		r.Get("/inspecciones/{id}", h.getInspection)
		r.With(h.withIntegrityCheck).Put("/inspecciones/{id}", h.updateInspection)

		// reference data
		r.Get("/colores", h.listColors)
		r.With(h.withIntegrityCheck).Post("/colores", h.createColor)
		r.Get("/postes", h.listPosts)
		r.With(h.withIntegrityCheck).Post("/postes", h.createPost)
		r.Get("/postes/{id}", h.getPost)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
