package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Showtime, error)
	ExistsAt(ctx context.Context, showroomID uuid.UUID, startsAt time.Time) (bool, error)
	Update(ctx context.Context, showtime *entity.Showtime) error
	Delete(ctx context.Context, id uuid.UUID) error

	// LockTx takes a row lock on the showtime. All seat allocation for a
	// showtime serialises on this lock.
	LockTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

const showtimeColumns = `id, movie_id, showroom_id, starts_at, format, base_price, created_at, updated_at`

func scanShowtime(row pgx.Row) (*entity.Showtime, error) {
	var st entity.Showtime
	err := row.Scan(
		&st.ID,
		&st.MovieID,
		&st.ShowroomID,
		&st.StartsAt,
		&st.Format,
		&st.BasePrice,
		&st.CreatedAt,
		&st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (` + showtimeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.ShowroomID,
		showtime.StartsAt,
		showtime.Format,
		showtime.BasePrice,
		showtime.CreatedAt,
		showtime.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", showtime.MovieID.String()),
			zap.Time("starts_at", showtime.StartsAt),
		)
		return fmt.Errorf("create showtime: %w", err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	query := `SELECT ` + showtimeColumns + ` FROM showtimes WHERE id = $1`

	st, err := scanShowtime(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime", zap.Error(err), zap.String("showtime_id", id.String()))
		return nil, fmt.Errorf("find showtime %s: %w", id.String(), err)
	}

	return st, nil
}

func (r *showtimeRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Showtime, error) {
	query := `SELECT ` + showtimeColumns + ` FROM showtimes WHERE movie_id = $1 ORDER BY starts_at`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find showtimes by movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find showtimes for movie %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	var showtimes []*entity.Showtime
	for rows.Next() {
		st, err := scanShowtime(rows)
		if err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		showtimes = append(showtimes, st)
	}

	return showtimes, nil
}

func (r *showtimeRepository) ExistsAt(ctx context.Context, showroomID uuid.UUID, startsAt time.Time) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM showtimes WHERE showroom_id = $1 AND starts_at = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, showroomID, startsAt).Scan(&exists); err != nil {
		r.log.Error("Failed to check showtime slot",
			zap.Error(err),
			zap.String("showroom_id", showroomID.String()),
			zap.Time("starts_at", startsAt),
		)
		return false, fmt.Errorf("check showtime slot: %w", err)
	}

	return exists, nil
}

func (r *showtimeRepository) Update(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		UPDATE showtimes
		SET movie_id = $2, showroom_id = $3, starts_at = $4, format = $5, base_price = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.ShowroomID,
		showtime.StartsAt,
		showtime.Format,
		showtime.BasePrice,
		showtime.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update showtime", zap.Error(err), zap.String("showtime_id", showtime.ID.String()))
		return fmt.Errorf("update showtime %s: %w", showtime.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %s not found", showtime.ID.String())
	}

	return nil
}

func (r *showtimeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM showtimes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete showtime", zap.Error(err), zap.String("showtime_id", id.String()))
		return fmt.Errorf("delete showtime %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %s not found", id.String())
	}

	return nil
}

func (r *showtimeRepository) LockTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	var locked uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM showtimes WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("showtime %s not found", id.String())
	}
	if err != nil {
		r.log.Error("Failed to lock showtime", zap.Error(err), zap.String("showtime_id", id.String()))
		return fmt.Errorf("lock showtime %s: %w", id.String(), err)
	}
	return nil
}
