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

type PromotionRepository interface {
	Create(ctx context.Context, promo *entity.Promotion) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)
	FindByCode(ctx context.Context, code string) (*entity.Promotion, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Promotion, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, promo *entity.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type promotionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPromotionRepository(db database.PgxIface, log *zap.Logger) PromotionRepository {
	return &promotionRepository{
		db:  db,
		log: log.With(zap.String("repository", "promotion")),
	}
}

const promotionColumns = `id, code, description, discount_percent, start_date, end_date, created_at, updated_at`

func scanPromotion(row pgx.Row) (*entity.Promotion, error) {
	var promo entity.Promotion
	err := row.Scan(
		&promo.ID,
		&promo.Code,
		&promo.Description,
		&promo.DiscountPercent,
		&promo.StartDate,
		&promo.EndDate,
		&promo.CreatedAt,
		&promo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

func (r *promotionRepository) Create(ctx context.Context, promo *entity.Promotion) error {
	query := `
		INSERT INTO promotions (` + promotionColumns + `)
		VALUES ($1, UPPER($2), $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		promo.ID,
		promo.Code,
		promo.Description,
		promo.DiscountPercent,
		promo.StartDate,
		promo.EndDate,
		promo.CreatedAt,
		promo.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create promotion", zap.Error(err), zap.String("code", promo.Code))
		return fmt.Errorf("create promotion %s: %w", promo.Code, err)
	}

	return nil
}

func (r *promotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1`

	promo, err := scanPromotion(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find promotion by ID", zap.Error(err), zap.String("promotion_id", id.String()))
		return nil, fmt.Errorf("find promotion by ID %s: %w", id.String(), err)
	}

	return promo, nil
}

func (r *promotionRepository) FindByCode(ctx context.Context, code string) (*entity.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE code = UPPER($1)`

	promo, err := scanPromotion(r.db.QueryRow(ctx, query, code))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find promotion by code", zap.Error(err), zap.String("code", code))
		return nil, fmt.Errorf("find promotion by code %s: %w", code, err)
	}

	return promo, nil
}

func (r *promotionRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions ORDER BY start_date DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find promotions", zap.Error(err))
		return nil, fmt.Errorf("find promotions: %w", err)
	}
	defer rows.Close()

	var promos []*entity.Promotion
	for rows.Next() {
		promo, err := scanPromotion(rows)
		if err != nil {
			r.log.Error("Failed to scan promotion row", zap.Error(err))
			return nil, fmt.Errorf("scan promotion row: %w", err)
		}
		promos = append(promos, promo)
	}

	return promos, nil
}

func (r *promotionRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM promotions`).Scan(&count); err != nil {
		r.log.Error("Failed to count promotions", zap.Error(err))
		return 0, fmt.Errorf("count promotions: %w", err)
	}
	return count, nil
}

func (r *promotionRepository) Update(ctx context.Context, promo *entity.Promotion) error {
	query := `
		UPDATE promotions
		SET code = UPPER($2), description = $3, discount_percent = $4, start_date = $5, end_date = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		promo.ID,
		promo.Code,
		promo.Description,
		promo.DiscountPercent,
		promo.StartDate,
		promo.EndDate,
		promo.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update promotion", zap.Error(err), zap.String("promotion_id", promo.ID.String()))
		return fmt.Errorf("update promotion %s: %w", promo.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("promotion %s not found", promo.ID.String())
	}

	return nil
}

func (r *promotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM promotions WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete promotion", zap.Error(err), zap.String("promotion_id", id.String()))
		return fmt.Errorf("delete promotion %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("promotion %s not found", id.String())
	}

	return nil
}
