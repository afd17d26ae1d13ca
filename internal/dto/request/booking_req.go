package request

// SeatSelection pairs one seat with the fare class it is bought under.
type SeatSelection struct {
	SeatID     string `json:"seat_id" validate:"required,uuid4"`
	TicketType string `json:"ticket_type" validate:"required"`
}

type CreateBookingRequest struct {
	ShowtimeID    string          `json:"showtime_id" validate:"required,uuid4"`
	Seats         []SeatSelection `json:"seats" validate:"required,min=1,max=10,dive"`
	PromoCode     *string         `json:"promo_code,omitempty" validate:"omitempty,max=30"`
	PaymentCardID *string         `json:"payment_card_id,omitempty" validate:"omitempty,uuid4"`
}
