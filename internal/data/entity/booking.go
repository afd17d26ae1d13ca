package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking aggregates the tickets of a single checkout. Created together
// with its tickets in one transaction; immutable afterwards except for
// the confirmed -> cancelled transition.
type Booking struct {
	Base
	OrderID       string          `db:"order_id"`
	UserID        uuid.UUID       `db:"user_id"`
	ShowtimeID    uuid.UUID       `db:"showtime_id"`
	PaymentCardID *uuid.UUID      `db:"payment_card_id"`
	PromoCode     *string         `db:"promo_code"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	Discount      decimal.Decimal `db:"discount"`
	Total         decimal.Decimal `db:"total"`
	Status        BookingStatus   `db:"status"`
}
