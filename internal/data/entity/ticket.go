package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TicketType string

const (
	TicketTypeAdult   TicketType = "ADULT"
	TicketTypeStudent TicketType = "STUDENT"
	TicketTypeChild   TicketType = "CHILD"
	TicketTypeSenior  TicketType = "SENIOR"
)

// ParseTicketType normalizes a wire value to a known ticket type.
func ParseTicketType(s string) (TicketType, bool) {
	switch TicketType(strings.ToUpper(strings.TrimSpace(s))) {
	case TicketTypeAdult:
		return TicketTypeAdult, true
	case TicketTypeStudent:
		return TicketTypeStudent, true
	case TicketTypeChild:
		return TicketTypeChild, true
	case TicketTypeSenior:
		return TicketTypeSenior, true
	}
	return "", false
}

// Multiplier returns the fare-class price multiplier applied to a
// showtime's base price. Values are exact decimals, never rounded.
func (t TicketType) Multiplier() decimal.Decimal {
	switch t {
	case TicketTypeStudent:
		return decimal.NewFromFloat(0.90)
	case TicketTypeChild:
		return decimal.NewFromFloat(0.80)
	case TicketTypeSenior:
		return decimal.NewFromFloat(0.85)
	default:
		return decimal.NewFromInt(1)
	}
}

// Ticket binds one seat to one showtime within one booking. At most one
// ticket under a non-cancelled booking may exist per (showtime, seat).
type Ticket struct {
	BaseSimple
	BookingID  uuid.UUID       `db:"booking_id"`
	ShowtimeID uuid.UUID       `db:"showtime_id"`
	SeatID     uuid.UUID       `db:"seat_id"`
	Type       TicketType      `db:"ticket_type"`
	Price      decimal.Decimal `db:"price"`
}
