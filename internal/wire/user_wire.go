package wire

import (
	"net/http"

	"cinema-ebooking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func UserRoutes(r chi.Router, h *adaptor.Handler, authed func(http.Handler) http.Handler) {
	r.Route("/users/me", func(me chi.Router) {
		me.Use(authed)

		me.Get("/", h.User.Profile)
		me.Put("/", h.User.UpdateProfile)

		me.Route("/cards", func(cards chi.Router) {
			cards.Get("/", h.User.ListPaymentCards)
			cards.Post("/", h.User.AddPaymentCard)
			cards.Put("/{cardID}", h.User.UpdatePaymentCard)
			cards.Delete("/{cardID}", h.User.DeletePaymentCard)
		})
	})
}
