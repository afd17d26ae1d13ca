package response

import (
	"time"

	"cinema-ebooking/internal/data/entity"
)

type MovieResponse struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Rating           *string    `json:"rating,omitempty"`
	Description      *string    `json:"description,omitempty"`
	PosterURL        *string    `json:"poster_url,omitempty"`
	TrailerYoutubeID *string    `json:"trailer_youtube_id,omitempty"`
	Genre            *string    `json:"genre,omitempty"`
	Status           string     `json:"status"`
	ReleaseDate      *time.Time `json:"release_date,omitempty"`
}

func NewMovieResponse(movie *entity.Movie) *MovieResponse {
	return &MovieResponse{
		ID:               movie.ID.String(),
		Title:            movie.Title,
		Rating:           movie.Rating,
		Description:      movie.Description,
		PosterURL:        movie.PosterURL,
		TrailerYoutubeID: movie.TrailerYoutubeID,
		Genre:            movie.Genre,
		Status:           string(movie.Status),
		ReleaseDate:      movie.ReleaseDate,
	}
}

type MovieListResponse struct {
	Movies     []*MovieResponse `json:"movies"`
	Pagination Pagination       `json:"pagination"`
}

// MovieDetailResponse is the catalog detail view with the screening
// schedule inlined.
type MovieDetailResponse struct {
	MovieResponse
	Showtimes []*ShowtimeResponse `json:"showtimes"`
}
