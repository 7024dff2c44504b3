package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)

		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.productCtx)
			r.Put("/", h.updateProduct)
			r.Delete("/", h.deleteProduct)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
