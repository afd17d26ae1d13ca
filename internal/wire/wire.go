package wire

import (
	"net/http"

	"cinema-ebooking/internal/adaptor"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/pkg/database"
	"cinema-ebooking/pkg/middleware"
	"cinema-ebooking/pkg/monitoring"
	"cinema-ebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter assembles the HTTP surface: ambient middleware, health and
// metrics endpoints, and the versioned API.
func NewRouter(db database.PgxIface, repo *repository.Repository, handler *adaptor.Handler, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recover(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS())
	r.Use(monitoring.HTTPMetrics())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			utils.ResponseInternalError(w, "database unreachable")
			return
		}
		utils.ResponseSuccess(w, "ok", nil)
	})
	r.Method(http.MethodGet, "/metrics", monitoring.Handler())

	authed := middleware.AuthSession(repo.Session, repo.User, log)
	admin := middleware.Admin(log)

	r.Route("/api/v1", func(api chi.Router) {
		AuthRoutes(api, handler, authed)
		UserRoutes(api, handler, authed)
		MovieRoutes(api, handler, authed, admin)
		ShowtimeRoutes(api, handler, authed, admin)
		BookingRoutes(api, handler, authed)
		PromotionRoutes(api, handler, authed, admin)
	})

	return r
}
