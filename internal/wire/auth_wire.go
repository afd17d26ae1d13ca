package wire

import (
	"net/http"

	"cinema-ebooking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(r chi.Router, h *adaptor.Handler, authed func(http.Handler) http.Handler) {
	r.Route("/auth", func(auth chi.Router) {
		auth.Post("/register", h.Auth.Register)
		auth.Post("/login", h.Auth.Login)
		auth.Post("/verify-email", h.Auth.VerifyEmail)
		auth.Post("/resend-verification", h.Auth.ResendVerification)
		auth.Post("/forgot-password", h.Auth.ForgotPassword)
		auth.Post("/reset-password", h.Auth.ResetPassword)

		auth.Group(func(protected chi.Router) {
			protected.Use(authed)
			protected.Post("/logout", h.Auth.Logout)
			protected.Post("/change-password", h.Auth.ChangePassword)
		})
	})
}
