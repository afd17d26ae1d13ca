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

type ShowroomRepository interface {
	Create(ctx context.Context, showroom *entity.Showroom) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showroom, error)
	FindAll(ctx context.Context) ([]*entity.Showroom, error)
	Update(ctx context.Context, showroom *entity.Showroom) error
	Delete(ctx context.Context, id uuid.UUID) error

	// LockTx takes a row lock on the showroom, serialising lazy seat
	// provisioning for the room.
	LockTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type showroomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowroomRepository(db database.PgxIface, log *zap.Logger) ShowroomRepository {
	return &showroomRepository{
		db:  db,
		log: log.With(zap.String("repository", "showroom")),
	}
}

func (r *showroomRepository) Create(ctx context.Context, showroom *entity.Showroom) error {
	query := `
		INSERT INTO showrooms (id, name, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		showroom.ID,
		showroom.Name,
		showroom.Capacity,
		showroom.CreatedAt,
		showroom.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create showroom", zap.Error(err), zap.String("name", showroom.Name))
		return fmt.Errorf("create showroom %q: %w", showroom.Name, err)
	}

	return nil
}

func (r *showroomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showroom, error) {
	query := `SELECT id, name, capacity, created_at, updated_at FROM showrooms WHERE id = $1`

	var room entity.Showroom
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showroom", zap.Error(err), zap.String("showroom_id", id.String()))
		return nil, fmt.Errorf("find showroom %s: %w", id.String(), err)
	}

	return &room, nil
}

func (r *showroomRepository) FindAll(ctx context.Context) ([]*entity.Showroom, error) {
	query := `SELECT id, name, capacity, created_at, updated_at FROM showrooms ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find showrooms", zap.Error(err))
		return nil, fmt.Errorf("find showrooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Showroom
	for rows.Next() {
		var room entity.Showroom
		err := rows.Scan(&room.ID, &room.Name, &room.Capacity, &room.CreatedAt, &room.UpdatedAt)
		if err != nil {
			r.log.Error("Failed to scan showroom row", zap.Error(err))
			return nil, fmt.Errorf("scan showroom row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

func (r *showroomRepository) Update(ctx context.Context, showroom *entity.Showroom) error {
	query := `UPDATE showrooms SET name = $2, capacity = $3, updated_at = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		showroom.ID,
		showroom.Name,
		showroom.Capacity,
		showroom.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update showroom", zap.Error(err), zap.String("showroom_id", showroom.ID.String()))
		return fmt.Errorf("update showroom %s: %w", showroom.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showroom %s not found", showroom.ID.String())
	}

	return nil
}

func (r *showroomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM showrooms WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete showroom", zap.Error(err), zap.String("showroom_id", id.String()))
		return fmt.Errorf("delete showroom %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showroom %s not found", id.String())
	}

	return nil
}

func (r *showroomRepository) LockTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	var locked uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM showrooms WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("showroom %s not found", id.String())
	}
	if err != nil {
		r.log.Error("Failed to lock showroom", zap.Error(err), zap.String("showroom_id", id.String()))
		return fmt.Errorf("lock showroom %s: %w", id.String(), err)
	}
	return nil
}
