package entity

import (
	"time"

	"github.com/google/uuid"
)

type AuthTokenKind string

const (
	AuthTokenEmailVerification AuthTokenKind = "email_verification"
	AuthTokenPasswordReset     AuthTokenKind = "password_reset"
)

// AuthToken is a single-use link token mailed to a user for email
// verification or password reset.
type AuthToken struct {
	BaseSimple
	UserID    uuid.UUID     `db:"user_id"`
	Token     uuid.UUID     `db:"token"`
	Kind      AuthTokenKind `db:"kind"`
	ExpiresAt time.Time     `db:"expires_at"`
	UsedAt    *time.Time    `db:"used_at"`
}
