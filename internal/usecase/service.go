package usecase

import (
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/notify"
	"cinema-ebooking/pkg/database"
	"cinema-ebooking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Movie     MovieService
	Showtime  ShowtimeService
	Booking   BookingService
	Promotion PromotionService
}

func NewService(repo *repository.Repository, db database.PgxIface, notifier notify.Dispatcher, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, notifier, config, log),
		User:      NewUserService(repo, notifier, log),
		Movie:     NewMovieService(repo, log),
		Showtime:  NewShowtimeService(repo, db, log),
		Booking:   NewBookingService(repo, db, notifier, log),
		Promotion: NewPromotionService(repo, log),
	}
}
