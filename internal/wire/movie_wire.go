package wire

import (
	"net/http"

	"cinema-ebooking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func MovieRoutes(r chi.Router, h *adaptor.Handler, authed, admin func(http.Handler) http.Handler) {
	r.Route("/movies", func(movies chi.Router) {
		movies.Get("/", h.Movie.List)
		movies.Get("/{movieID}", h.Movie.Detail)

		movies.Group(func(protected chi.Router) {
			protected.Use(authed, admin)
			protected.Post("/", h.Movie.Create)
			protected.Put("/{movieID}", h.Movie.Update)
			protected.Delete("/{movieID}", h.Movie.Delete)
		})
	})
}
