package request

import "time"

type MovieRequest struct {
	Title            string     `json:"title" validate:"required,max=200"`
	Rating           *string    `json:"rating,omitempty" validate:"omitempty,max=10"`
	Description      *string    `json:"description,omitempty"`
	PosterURL        *string    `json:"poster_url,omitempty" validate:"omitempty,url"`
	TrailerYoutubeID *string    `json:"trailer_youtube_id,omitempty" validate:"omitempty,max=20"`
	Genre            *string    `json:"genre,omitempty" validate:"omitempty,max=50"`
	Status           string     `json:"status" validate:"required,oneof=running coming_soon"`
	ReleaseDate      *time.Time `json:"release_date,omitempty"`
}
