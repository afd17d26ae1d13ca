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

type TicketRepository interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Ticket, error)

	// FindReservedSeatIDs returns seat IDs holding a ticket under a
	// non-cancelled booking for the showtime. Cancelled bookings keep
	// their tickets but release the seats.
	FindReservedSeatIDs(ctx context.Context, showtimeID uuid.UUID) ([]uuid.UUID, error)

	// FindConflictingSeatIDsTx locks and returns the subset of the
	// requested seats already taken for the showtime. Runs inside the
	// booking transaction with FOR UPDATE on the ticket rows.
	FindConflictingSeatIDsTx(ctx context.Context, tx pgx.Tx, showtimeID uuid.UUID, seatIDs []uuid.UUID) ([]uuid.UUID, error)

	CreateBatchTx(ctx context.Context, tx pgx.Tx, tickets []*entity.Ticket) error
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Ticket, error) {
	query := `
		SELECT id, booking_id, showtime_id, seat_id, ticket_type, price, created_at
		FROM tickets
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find tickets by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find tickets by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var t entity.Ticket
		err := rows.Scan(
			&t.ID,
			&t.BookingID,
			&t.ShowtimeID,
			&t.SeatID,
			&t.Type,
			&t.Price,
			&t.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &t)
	}

	return tickets, nil
}

func (r *ticketRepository) FindReservedSeatIDs(ctx context.Context, showtimeID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT t.seat_id
		FROM tickets t
		INNER JOIN bookings b ON t.booking_id = b.id
		WHERE t.showtime_id = $1 AND b.status <> 'cancelled'
	`

	rows, err := r.db.Query(ctx, query, showtimeID)
	if err != nil {
		r.log.Error("Failed to find reserved seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("find reserved seats for showtime %s: %w", showtimeID.String(), err)
	}
	defer rows.Close()

	return collectSeatIDs(rows)
}

func (r *ticketRepository) FindConflictingSeatIDsTx(ctx context.Context, tx pgx.Tx, showtimeID uuid.UUID, seatIDs []uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT t.seat_id
		FROM tickets t
		INNER JOIN bookings b ON t.booking_id = b.id
		WHERE t.showtime_id = $1 AND t.seat_id = ANY($2) AND b.status <> 'cancelled'
		FOR UPDATE OF t
	`

	rows, err := tx.Query(ctx, query, showtimeID, seatIDs)
	if err != nil {
		r.log.Error("Failed to lock conflicting tickets",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("lock tickets for showtime %s: %w", showtimeID.String(), err)
	}
	defer rows.Close()

	return collectSeatIDs(rows)
}

func (r *ticketRepository) CreateBatchTx(ctx context.Context, tx pgx.Tx, tickets []*entity.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	query := `INSERT INTO tickets (id, booking_id, showtime_id, seat_id, ticket_type, price, created_at) VALUES `
	args := []any{}

	for i, t := range tickets {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			i*7+1, i*7+2, i*7+3, i*7+4, i*7+5, i*7+6, i*7+7)

		args = append(args,
			t.ID,
			t.BookingID,
			t.ShowtimeID,
			t.SeatID,
			t.Type,
			t.Price,
			t.CreatedAt,
		)
	}

	_, err := tx.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create ticket batch",
			zap.Error(err),
			zap.Int("count", len(tickets)),
		)
		return fmt.Errorf("create ticket batch: %w", err)
	}

	return nil
}

func collectSeatIDs(rows pgx.Rows) ([]uuid.UUID, error) {
	var seatIDs []uuid.UUID
	for rows.Next() {
		var seatID uuid.UUID
		if err := rows.Scan(&seatID); err != nil {
			return nil, fmt.Errorf("scan seat ID row: %w", err)
		}
		seatIDs = append(seatIDs, seatID)
	}
	return seatIDs, rows.Err()
}
