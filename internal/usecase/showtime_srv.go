package usecase

import (
	"context"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/dto/response"
	"cinema-ebooking/pkg/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ShowtimeService interface {
	ListShowrooms(ctx context.Context) ([]*response.ShowroomResponse, error)
	CreateShowroom(ctx context.Context, req *request.ShowroomRequest) (*response.ShowroomResponse, error)
	UpdateShowroom(ctx context.Context, id uuid.UUID, req *request.ShowroomRequest) (*response.ShowroomResponse, error)
	DeleteShowroom(ctx context.Context, id uuid.UUID) error

	CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
	UpdateShowtime(ctx context.Context, id uuid.UUID, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
	DeleteShowtime(ctx context.Context, id uuid.UUID) error

	SeatMap(ctx context.Context, showtimeID uuid.UUID) (*response.SeatMapResponse, error)
}

type showtimeService struct {
	repo *repository.Repository
	db   database.PgxIface
	log  *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, db database.PgxIface, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		db:   db,
		log:  log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) ListShowrooms(ctx context.Context) ([]*response.ShowroomResponse, error) {
	showrooms, err := s.repo.Showroom.FindAll(ctx)
	if err != nil {
		return nil, errInternal("failed to load showrooms", err)
	}

	res := make([]*response.ShowroomResponse, 0, len(showrooms))
	for _, room := range showrooms {
		res = append(res, response.NewShowroomResponse(room))
	}

	return res, nil
}

func (s *showtimeService) CreateShowroom(ctx context.Context, req *request.ShowroomRequest) (*response.ShowroomResponse, error) {
	showroom := &entity.Showroom{
		Base:     entity.NewBase(),
		Name:     req.Name,
		Capacity: req.Capacity,
	}

	if err := s.repo.Showroom.Create(ctx, showroom); err != nil {
		return nil, errInternal("failed to create showroom", err)
	}

	s.log.Info("Showroom created", zap.String("showroom_id", showroom.ID.String()), zap.String("name", showroom.Name))
	return response.NewShowroomResponse(showroom), nil
}

func (s *showtimeService) UpdateShowroom(ctx context.Context, id uuid.UUID, req *request.ShowroomRequest) (*response.ShowroomResponse, error) {
	showroom, err := s.repo.Showroom.FindByID(ctx, id)
	if err != nil {
		return nil, errInternal("failed to load showroom", err)
	}
	if showroom == nil {
		return nil, ErrNotFound("showroom not found")
	}

	showroom.Name = req.Name
	showroom.Capacity = req.Capacity
	showroom.UpdatedAt = time.Now()

	if err := s.repo.Showroom.Update(ctx, showroom); err != nil {
		return nil, errInternal("failed to update showroom", err)
	}

	return response.NewShowroomResponse(showroom), nil
}

func (s *showtimeService) DeleteShowroom(ctx context.Context, id uuid.UUID) error {
	showroom, err := s.repo.Showroom.FindByID(ctx, id)
	if err != nil {
		return errInternal("failed to load showroom", err)
	}
	if showroom == nil {
		return ErrNotFound("showroom not found")
	}

	if err := s.repo.Showroom.Delete(ctx, id); err != nil {
		return errInternal("failed to delete showroom", err)
	}

	return nil
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	movieID, showroomID, basePrice, err := s.parseShowtimeRequest(req)
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, errInternal("failed to load movie", err)
	}
	if movie == nil {
		return nil, ErrNotFound("movie not found")
	}

	showroom, err := s.repo.Showroom.FindByID(ctx, showroomID)
	if err != nil {
		return nil, errInternal("failed to load showroom", err)
	}
	if showroom == nil {
		return nil, ErrNotFound("showroom not found")
	}

	// One screening per room per time slot.
	taken, err := s.repo.Showtime.ExistsAt(ctx, showroomID, req.StartsAt)
	if err != nil {
		return nil, errInternal("failed to check showtime slot", err)
	}
	if taken {
		return nil, ErrConflict("showroom already has a screening at this time")
	}

	showtime := &entity.Showtime{
		Base:       entity.NewBase(),
		MovieID:    movieID,
		ShowroomID: showroomID,
		StartsAt:   req.StartsAt,
		Format:     req.Format,
		BasePrice:  basePrice,
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		return nil, errInternal("failed to create showtime", err)
	}

	s.log.Info("Showtime created",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("movie_id", movieID.String()),
		zap.Time("starts_at", showtime.StartsAt),
	)

	return response.NewShowtimeResponse(showtime), nil
}

func (s *showtimeService) UpdateShowtime(ctx context.Context, id uuid.UUID, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return nil, errInternal("failed to load showtime", err)
	}
	if showtime == nil {
		return nil, ErrNotFound("showtime not found")
	}

	movieID, showroomID, basePrice, err := s.parseShowtimeRequest(req)
	if err != nil {
		return nil, err
	}

	if showroomID != showtime.ShowroomID || !req.StartsAt.Equal(showtime.StartsAt) {
		taken, err := s.repo.Showtime.ExistsAt(ctx, showroomID, req.StartsAt)
		if err != nil {
			return nil, errInternal("failed to check showtime slot", err)
		}
		if taken {
			return nil, ErrConflict("showroom already has a screening at this time")
		}
	}

	showtime.MovieID = movieID
	showtime.ShowroomID = showroomID
	showtime.StartsAt = req.StartsAt
	showtime.Format = req.Format
	showtime.BasePrice = basePrice
	showtime.UpdatedAt = time.Now()

	if err := s.repo.Showtime.Update(ctx, showtime); err != nil {
		return nil, errInternal("failed to update showtime", err)
	}

	return response.NewShowtimeResponse(showtime), nil
}

func (s *showtimeService) DeleteShowtime(ctx context.Context, id uuid.UUID) error {
	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return errInternal("failed to load showtime", err)
	}
	if showtime == nil {
		return ErrNotFound("showtime not found")
	}

	if err := s.repo.Showtime.Delete(ctx, id); err != nil {
		return errInternal("failed to delete showtime", err)
	}

	return nil
}

// SeatMap returns every seat of the showtime's room flagged with its
// availability. Rooms that never had seats provisioned get the default
// grid on first request.
func (s *showtimeService) SeatMap(ctx context.Context, showtimeID uuid.UUID) (*response.SeatMapResponse, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, errInternal("failed to load showtime", err)
	}
	if showtime == nil {
		return nil, ErrNotFound("showtime not found")
	}

	seats, err := s.repo.Seat.FindByShowroomID(ctx, showtime.ShowroomID)
	if err != nil {
		return nil, errInternal("failed to load seats", err)
	}
	if len(seats) == 0 {
		if err := s.provisionSeats(ctx, showtime.ShowroomID); err != nil {
			return nil, err
		}
		seats, err = s.repo.Seat.FindByShowroomID(ctx, showtime.ShowroomID)
		if err != nil {
			return nil, errInternal("failed to load seats", err)
		}
	}

	reservedIDs, err := s.repo.Ticket.FindReservedSeatIDs(ctx, showtimeID)
	if err != nil {
		return nil, errInternal("failed to load reserved seats", err)
	}

	reserved := make(map[uuid.UUID]bool, len(reservedIDs))
	for _, seatID := range reservedIDs {
		reserved[seatID] = true
	}

	res := &response.SeatMapResponse{
		ShowtimeID: showtimeID.String(),
		Seats:      make([]*response.SeatResponse, 0, len(seats)),
	}
	for _, seat := range seats {
		res.Seats = append(res.Seats, &response.SeatResponse{
			ID:       seat.ID.String(),
			Row:      seat.Row,
			Number:   seat.Number,
			Label:    seat.Label(),
			Reserved: reserved[seat.ID],
		})
	}

	return res, nil
}

// provisionSeats creates the default grid under the showroom row lock.
// A concurrent provisioner commits before releasing the lock, so the
// recount after acquiring it is authoritative.
func (s *showtimeService) provisionSeats(ctx context.Context, showroomID uuid.UUID) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return errInternal("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	if err := s.repo.Showroom.LockTx(ctx, tx, showroomID); err != nil {
		return errInternal("failed to lock showroom", err)
	}

	count, err := s.repo.Seat.CountByShowroomID(ctx, showroomID)
	if err != nil {
		return errInternal("failed to count seats", err)
	}
	if count > 0 {
		return nil
	}

	grid := entity.NewDefaultGrid(showroomID)
	if err := s.repo.Seat.CreateBatchTx(ctx, tx, grid); err != nil {
		return errInternal("failed to provision seats", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return errInternal("failed to commit seat grid", err)
	}

	s.log.Info("Seat grid provisioned",
		zap.String("showroom_id", showroomID.String()),
		zap.Int("seats", len(grid)),
	)

	return nil
}

func (s *showtimeService) parseShowtimeRequest(req *request.ShowtimeRequest) (movieID, showroomID uuid.UUID, basePrice decimal.Decimal, err error) {
	movieID, parseErr := uuid.Parse(req.MovieID)
	if parseErr != nil {
		return uuid.Nil, uuid.Nil, decimal.Zero, ErrInvalidInput("invalid movie ID")
	}

	showroomID, parseErr = uuid.Parse(req.ShowroomID)
	if parseErr != nil {
		return uuid.Nil, uuid.Nil, decimal.Zero, ErrInvalidInput("invalid showroom ID")
	}

	basePrice, parseErr = decimal.NewFromString(req.BasePrice)
	if parseErr != nil || basePrice.IsNegative() {
		return uuid.Nil, uuid.Nil, decimal.Zero, ErrInvalidInput("base price must be a non-negative amount")
	}

	return movieID, showroomID, basePrice, nil
}
