package wire

import (
	"net/http"

	"cinema-ebooking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func BookingRoutes(r chi.Router, h *adaptor.Handler, authed func(http.Handler) http.Handler) {
	r.Route("/bookings", func(bookings chi.Router) {
		bookings.Use(authed)

		bookings.Post("/", h.Booking.Create)
		bookings.Get("/", h.Booking.List)
		bookings.Get("/{bookingID}", h.Booking.Detail)
		bookings.Post("/{bookingID}/cancel", h.Booking.Cancel)
	})
}
