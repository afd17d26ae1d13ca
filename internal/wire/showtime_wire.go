package wire

import (
	"net/http"

	"cinema-ebooking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func ShowtimeRoutes(r chi.Router, h *adaptor.Handler, authed, admin func(http.Handler) http.Handler) {
	r.Get("/showtimes/{showtimeID}/seats", h.Showtime.SeatMap)

	r.Group(func(protected chi.Router) {
		protected.Use(authed, admin)

		protected.Post("/showtimes", h.Showtime.CreateShowtime)
		protected.Put("/showtimes/{showtimeID}", h.Showtime.UpdateShowtime)
		protected.Delete("/showtimes/{showtimeID}", h.Showtime.DeleteShowtime)

		protected.Get("/showrooms", h.Showtime.ListShowrooms)
		protected.Post("/showrooms", h.Showtime.CreateShowroom)
		protected.Put("/showrooms/{showroomID}", h.Showtime.UpdateShowroom)
		protected.Delete("/showrooms/{showroomID}", h.Showtime.DeleteShowroom)
	})
}
