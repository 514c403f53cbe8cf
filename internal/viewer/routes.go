package viewer

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all viewer routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleIndex)
	r.Route("/figures/{id}", func(r chi.Router) {
		r.Use(h.figureOnly)
		r.Get("/", h.HandlePage)
		r.Get("/image", h.HandleImage)
		r.Get("/ws", h.HandleWebSocket)
	})
	r.Route("/api/figures/{id}", func(r chi.Router) {
		r.Use(h.figureOnly)
		r.Get("/", h.HandleGetFigure)
		r.Post("/close", h.HandleClose)
	})
}
