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

type PaymentCardRepository interface {
	Create(ctx context.Context, card *entity.PaymentCard) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentCard, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentCard, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, card *entity.PaymentCard) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentCardRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentCardRepository(db database.PgxIface, log *zap.Logger) PaymentCardRepository {
	return &paymentCardRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment_card")),
	}
}

func (r *paymentCardRepository) Create(ctx context.Context, card *entity.PaymentCard) error {
	query := `
		INSERT INTO payment_cards (id, user_id, cardholder_name, brand, last4, exp_month, exp_year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		card.ID,
		card.UserID,
		card.CardholderName,
		card.Brand,
		card.Last4,
		card.ExpMonth,
		card.ExpYear,
		card.CreatedAt,
		card.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment card",
			zap.Error(err),
			zap.String("user_id", card.UserID.String()),
		)
		return fmt.Errorf("create payment card for user %s: %w", card.UserID.String(), err)
	}

	return nil
}

func (r *paymentCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentCard, error) {
	query := `
		SELECT id, user_id, cardholder_name, brand, last4, exp_month, exp_year, created_at, updated_at
		FROM payment_cards
		WHERE id = $1
	`

	var card entity.PaymentCard
	err := r.db.QueryRow(ctx, query, id).Scan(
		&card.ID,
		&card.UserID,
		&card.CardholderName,
		&card.Brand,
		&card.Last4,
		&card.ExpMonth,
		&card.ExpYear,
		&card.CreatedAt,
		&card.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment card", zap.Error(err), zap.String("card_id", id.String()))
		return nil, fmt.Errorf("find payment card %s: %w", id.String(), err)
	}

	return &card, nil
}

func (r *paymentCardRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentCard, error) {
	query := `
		SELECT id, user_id, cardholder_name, brand, last4, exp_month, exp_year, created_at, updated_at
		FROM payment_cards
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find payment cards", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find payment cards for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var cards []*entity.PaymentCard
	for rows.Next() {
		var card entity.PaymentCard
		err := rows.Scan(
			&card.ID,
			&card.UserID,
			&card.CardholderName,
			&card.Brand,
			&card.Last4,
			&card.ExpMonth,
			&card.ExpYear,
			&card.CreatedAt,
			&card.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment card row", zap.Error(err))
			return nil, fmt.Errorf("scan payment card row: %w", err)
		}
		cards = append(cards, &card)
	}

	return cards, nil
}

func (r *paymentCardRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM payment_cards WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count payment cards", zap.Error(err), zap.String("user_id", userID.String()))
		return 0, fmt.Errorf("count payment cards for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *paymentCardRepository) Update(ctx context.Context, card *entity.PaymentCard) error {
	query := `
		UPDATE payment_cards
		SET cardholder_name = $2, brand = $3, last4 = $4, exp_month = $5, exp_year = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		card.ID,
		card.CardholderName,
		card.Brand,
		card.Last4,
		card.ExpMonth,
		card.ExpYear,
		card.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update payment card", zap.Error(err), zap.String("card_id", card.ID.String()))
		return fmt.Errorf("update payment card %s: %w", card.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment card %s not found", card.ID.String())
	}

	return nil
}

func (r *paymentCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM payment_cards WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete payment card", zap.Error(err), zap.String("card_id", id.String()))
		return fmt.Errorf("delete payment card %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment card %s not found", id.String())
	}

	return nil
}
