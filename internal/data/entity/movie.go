package entity

import (
	"time"
)

type MovieStatus string

const (
	MovieStatusRunning    MovieStatus = "running"
	MovieStatusComingSoon MovieStatus = "coming_soon"
)

type Movie struct {
	Base
	Title            string      `db:"title"`
	Rating           *string     `db:"rating"` // MPAA rating (G, PG, PG-13, ...)
	Description      *string     `db:"description"`
	PosterURL        *string     `db:"poster_url"`
	TrailerYoutubeID *string     `db:"trailer_youtube_id"`
	Genre            *string     `db:"genre"`
	Status           MovieStatus `db:"status"`
	ReleaseDate      *time.Time  `db:"release_date"`
}
