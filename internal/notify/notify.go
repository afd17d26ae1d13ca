package notify

import (
	"time"

	"cinema-ebooking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingEmail carries the details shown in confirmation and
// cancellation mails.
type BookingEmail struct {
	OrderID    string
	MovieTitle string
	StartsAt   time.Time
	Seats      []string
	Total      decimal.Decimal
}

// Dispatcher sends transactional emails. Implementations never return
// errors to callers; delivery failures are logged and counted, a booking
// or registration must not fail because the mail server is down.
type Dispatcher interface {
	SendVerification(user *entity.User, token uuid.UUID)
	SendPasswordReset(user *entity.User, token uuid.UUID)
	SendProfileUpdated(user *entity.User)
	SendBookingConfirmation(user *entity.User, details BookingEmail)
	SendBookingCancellation(user *entity.User, details BookingEmail)
}
