package request

import "time"

type ShowroomRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}

type ShowtimeRequest struct {
	MovieID    string    `json:"movie_id" validate:"required,uuid4"`
	ShowroomID string    `json:"showroom_id" validate:"required,uuid4"`
	StartsAt   time.Time `json:"starts_at" validate:"required"`
	Format     string    `json:"format" validate:"required,max=10"`
	BasePrice  string    `json:"base_price" validate:"required"`
}
