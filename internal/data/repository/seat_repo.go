package repository

import (
	"context"
	"fmt"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeatRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error)
	FindByShowroomID(ctx context.Context, showroomID uuid.UUID) ([]*entity.Seat, error)
	CountByShowroomID(ctx context.Context, showroomID uuid.UUID) (int64, error)

	// FindSeatsForBooking resolves the requested seats restricted to the
	// given showroom; callers compare the returned count with the
	// requested count to detect cross-room selections.
	FindSeatsForBooking(ctx context.Context, showroomID uuid.UUID, seatIDs []uuid.UUID) ([]*entity.Seat, error)

	// CreateBatchTx inserts a seat grid inside the provisioning transaction.
	CreateBatchTx(ctx context.Context, tx pgx.Tx, seats []*entity.Seat) error
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

const seatColumns = `id, showroom_id, seat_row, seat_number, created_at`

func scanSeat(row pgx.Row) (*entity.Seat, error) {
	var seat entity.Seat
	err := row.Scan(
		&seat.ID,
		&seat.ShowroomID,
		&seat.Row,
		&seat.Number,
		&seat.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *seatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	query := `SELECT ` + seatColumns + ` FROM seats WHERE id = $1`

	seat, err := scanSeat(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat", zap.Error(err), zap.String("seat_id", id.String()))
		return nil, fmt.Errorf("find seat %s: %w", id.String(), err)
	}

	return seat, nil
}

func (r *seatRepository) FindByShowroomID(ctx context.Context, showroomID uuid.UUID) ([]*entity.Seat, error) {
	query := `SELECT ` + seatColumns + ` FROM seats WHERE showroom_id = $1 ORDER BY seat_row, seat_number`

	rows, err := r.db.Query(ctx, query, showroomID)
	if err != nil {
		r.log.Error("Failed to find seats by showroom",
			zap.Error(err),
			zap.String("showroom_id", showroomID.String()),
		)
		return nil, fmt.Errorf("find seats for showroom %s: %w", showroomID.String(), err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		seat, err := scanSeat(rows)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, nil
}

func (r *seatRepository) CountByShowroomID(ctx context.Context, showroomID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM seats WHERE showroom_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, showroomID).Scan(&count); err != nil {
		r.log.Error("Failed to count seats", zap.Error(err), zap.String("showroom_id", showroomID.String()))
		return 0, fmt.Errorf("count seats for showroom %s: %w", showroomID.String(), err)
	}

	return count, nil
}

func (r *seatRepository) FindSeatsForBooking(ctx context.Context, showroomID uuid.UUID, seatIDs []uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT ` + seatColumns + `
		FROM seats
		WHERE showroom_id = $1 AND id = ANY($2)
		ORDER BY seat_row, seat_number
	`

	rows, err := r.db.Query(ctx, query, showroomID, seatIDs)
	if err != nil {
		r.log.Error("Failed to find seats for booking",
			zap.Error(err),
			zap.String("showroom_id", showroomID.String()),
			zap.Int("requested", len(seatIDs)),
		)
		return nil, fmt.Errorf("find seats for booking in showroom %s: %w", showroomID.String(), err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		seat, err := scanSeat(rows)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, nil
}

func (r *seatRepository) CreateBatchTx(ctx context.Context, tx pgx.Tx, seats []*entity.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	query := `INSERT INTO seats (id, showroom_id, seat_row, seat_number, created_at) VALUES `
	args := []any{}

	for i, seat := range seats {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)",
			i*5+1, i*5+2, i*5+3, i*5+4, i*5+5)

		args = append(args,
			seat.ID,
			seat.ShowroomID,
			seat.Row,
			seat.Number,
			seat.CreatedAt,
		)
	}

	_, err := tx.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create seat batch",
			zap.Error(err),
			zap.Int("count", len(seats)),
		)
		return fmt.Errorf("create seat batch: %w", err)
	}

	return nil
}
