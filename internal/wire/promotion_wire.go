package wire

import (
	"net/http"

	"cinema-ebooking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func PromotionRoutes(r chi.Router, h *adaptor.Handler, authed, admin func(http.Handler) http.Handler) {
	r.Route("/promotions", func(promos chi.Router) {
		promos.Post("/validate", h.Promotion.Validate)

		promos.Group(func(protected chi.Router) {
			protected.Use(authed, admin)
			protected.Get("/", h.Promotion.List)
			protected.Post("/", h.Promotion.Create)
			protected.Put("/{promotionID}", h.Promotion.Update)
			protected.Delete("/{promotionID}", h.Promotion.Delete)
		})
	})
}
