package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Showtime is a scheduled screening of a movie in a showroom.
// (showroom_id, starts_at) is unique.
type Showtime struct {
	Base
	MovieID    uuid.UUID       `db:"movie_id"`
	ShowroomID uuid.UUID       `db:"showroom_id"`
	StartsAt   time.Time       `db:"starts_at"`
	Format     string          `db:"format"` // 2D, 3D, IMAX, ...
	BasePrice  decimal.Decimal `db:"base_price"`
}
