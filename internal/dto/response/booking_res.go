package response

import "time"

type TicketResponse struct {
	ID         string `json:"id"`
	SeatID     string `json:"seat_id"`
	SeatLabel  string `json:"seat_label"`
	TicketType string `json:"ticket_type"`
	Price      string `json:"price"`
}

type BookingResponse struct {
	ID         string            `json:"id"`
	OrderID    string            `json:"order_id"`
	ShowtimeID string            `json:"showtime_id"`
	Status     string            `json:"status"`
	PromoCode  *string           `json:"promo_code,omitempty"`
	Subtotal   string            `json:"subtotal"`
	Discount   string            `json:"discount_amount"`
	Total      string            `json:"total"`
	Tickets    []*TicketResponse `json:"tickets"`
	CreatedAt  time.Time         `json:"created_at"`
}

type BookingListResponse struct {
	Bookings   []*BookingResponse `json:"bookings"`
	Pagination Pagination         `json:"pagination"`
}
