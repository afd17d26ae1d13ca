package response

import (
	"time"

	"cinema-ebooking/internal/data/entity"
)

type ShowroomResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

func NewShowroomResponse(showroom *entity.Showroom) *ShowroomResponse {
	return &ShowroomResponse{
		ID:       showroom.ID.String(),
		Name:     showroom.Name,
		Capacity: showroom.Capacity,
	}
}

type ShowtimeResponse struct {
	ID         string    `json:"id"`
	MovieID    string    `json:"movie_id"`
	ShowroomID string    `json:"showroom_id"`
	StartsAt   time.Time `json:"starts_at"`
	Format     string    `json:"format"`
	BasePrice  string    `json:"base_price"`
}

func NewShowtimeResponse(showtime *entity.Showtime) *ShowtimeResponse {
	return &ShowtimeResponse{
		ID:         showtime.ID.String(),
		MovieID:    showtime.MovieID.String(),
		ShowroomID: showtime.ShowroomID.String(),
		StartsAt:   showtime.StartsAt,
		Format:     showtime.Format,
		BasePrice:  showtime.BasePrice.StringFixed(2),
	}
}

type SeatResponse struct {
	ID       string `json:"id"`
	Row      string `json:"row"`
	Number   int    `json:"number"`
	Label    string `json:"label"`
	Reserved bool   `json:"reserved"`
}

// SeatMapResponse is the availability snapshot for one showtime.
type SeatMapResponse struct {
	ShowtimeID string          `json:"showtime_id"`
	Seats      []*SeatResponse `json:"seats"`
}
