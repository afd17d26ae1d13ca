package usecase

import (
	"context"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/dto/response"
	"cinema-ebooking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	FindAll(ctx context.Context, filter repository.MovieFilter, page, perPage int) (*response.MovieListResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*response.MovieDetailResponse, error)
	Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) FindAll(ctx context.Context, filter repository.MovieFilter, page, perPage int) (*response.MovieListResponse, error) {
	offset := utils.CalculateOffset(page, perPage)

	movies, err := s.repo.Movie.FindAll(ctx, filter, perPage, offset)
	if err != nil {
		return nil, errInternal("failed to load movies", err)
	}

	total, err := s.repo.Movie.CountAll(ctx, filter)
	if err != nil {
		return nil, errInternal("failed to count movies", err)
	}

	list := &response.MovieListResponse{
		Movies: make([]*response.MovieResponse, 0, len(movies)),
		Pagination: response.Pagination{
			Page:       page,
			PerPage:    perPage,
			TotalItems: total,
			TotalPages: utils.CalculateTotalPages(total, perPage),
		},
	}

	for _, movie := range movies {
		list.Movies = append(list.Movies, response.NewMovieResponse(movie))
	}

	return list, nil
}

func (s *movieService) FindByID(ctx context.Context, id uuid.UUID) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, errInternal("failed to load movie", err)
	}
	if movie == nil {
		return nil, ErrNotFound("movie not found")
	}

	showtimes, err := s.repo.Showtime.FindByMovieID(ctx, id)
	if err != nil {
		return nil, errInternal("failed to load showtimes", err)
	}

	detail := &response.MovieDetailResponse{
		MovieResponse: *response.NewMovieResponse(movie),
		Showtimes:     make([]*response.ShowtimeResponse, 0, len(showtimes)),
	}
	for _, st := range showtimes {
		detail.Showtimes = append(detail.Showtimes, response.NewShowtimeResponse(st))
	}

	return detail, nil
}

func (s *movieService) Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	movie := &entity.Movie{
		Base:             entity.NewBase(),
		Title:            req.Title,
		Rating:           req.Rating,
		Description:      req.Description,
		PosterURL:        req.PosterURL,
		TrailerYoutubeID: req.TrailerYoutubeID,
		Genre:            req.Genre,
		Status:           entity.MovieStatus(req.Status),
		ReleaseDate:      req.ReleaseDate,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, errInternal("failed to create movie", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	return response.NewMovieResponse(movie), nil
}

func (s *movieService) Update(ctx context.Context, id uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, errInternal("failed to load movie", err)
	}
	if movie == nil {
		return nil, ErrNotFound("movie not found")
	}

	movie.Title = req.Title
	movie.Rating = req.Rating
	movie.Description = req.Description
	movie.PosterURL = req.PosterURL
	movie.TrailerYoutubeID = req.TrailerYoutubeID
	movie.Genre = req.Genre
	movie.Status = entity.MovieStatus(req.Status)
	movie.ReleaseDate = req.ReleaseDate
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		return nil, errInternal("failed to update movie", err)
	}

	return response.NewMovieResponse(movie), nil
}

func (s *movieService) Delete(ctx context.Context, id uuid.UUID) error {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return errInternal("failed to load movie", err)
	}
	if movie == nil {
		return ErrNotFound("movie not found")
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		return errInternal("failed to delete movie", err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}
