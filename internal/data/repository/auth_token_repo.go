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

type AuthTokenRepository interface {
	Create(ctx context.Context, token *entity.AuthToken) error
	FindValid(ctx context.Context, token uuid.UUID, kind entity.AuthTokenKind) (*entity.AuthToken, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
}

type authTokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuthTokenRepository(db database.PgxIface, log *zap.Logger) AuthTokenRepository {
	return &authTokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "auth_token")),
	}
}

func (r *authTokenRepository) Create(ctx context.Context, token *entity.AuthToken) error {
	query := `
		INSERT INTO auth_tokens (id, user_id, token, kind, expires_at, used_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		token.ID,
		token.UserID,
		token.Token,
		token.Kind,
		token.ExpiresAt,
		token.UsedAt,
		token.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create auth token",
			zap.Error(err),
			zap.String("user_id", token.UserID.String()),
			zap.String("kind", string(token.Kind)),
		)
		return fmt.Errorf("create %s token for user %s: %w", token.Kind, token.UserID.String(), err)
	}

	return nil
}

func (r *authTokenRepository) FindValid(ctx context.Context, token uuid.UUID, kind entity.AuthTokenKind) (*entity.AuthToken, error) {
	query := `
		SELECT id, user_id, token, kind, expires_at, used_at, created_at
		FROM auth_tokens
		WHERE token = $1 AND kind = $2 AND expires_at > NOW() AND used_at IS NULL
	`

	var t entity.AuthToken
	err := r.db.QueryRow(ctx, query, token, kind).Scan(
		&t.ID,
		&t.UserID,
		&t.Token,
		&t.Kind,
		&t.ExpiresAt,
		&t.UsedAt,
		&t.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find auth token", zap.Error(err), zap.String("kind", string(kind)))
		return nil, fmt.Errorf("find %s token: %w", kind, err)
	}

	return &t, nil
}

func (r *authTokenRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE auth_tokens SET used_at = NOW() WHERE id = $1 AND used_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark auth token used", zap.Error(err), zap.String("token_id", id.String()))
		return fmt.Errorf("mark auth token %s used: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("auth token %s not found or already used", id.String())
	}

	return nil
}
