package repository

import (
	"cinema-ebooking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	AuthToken   AuthTokenRepository
	PaymentCard PaymentCardRepository
	Movie       MovieRepository
	Showroom    ShowroomRepository
	Seat        SeatRepository
	Showtime    ShowtimeRepository
	Booking     BookingRepository
	Ticket      TicketRepository
	Promotion   PromotionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		AuthToken:   NewAuthTokenRepository(db, log),
		PaymentCard: NewPaymentCardRepository(db, log),
		Movie:       NewMovieRepository(db, log),
		Showroom:    NewShowroomRepository(db, log),
		Seat:        NewSeatRepository(db, log),
		Showtime:    NewShowtimeRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Ticket:      NewTicketRepository(db, log),
		Promotion:   NewPromotionRepository(db, log),
	}
}
