package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion is a time-bounded percentage discount code. Codes are stored
// uppercase and matched case-insensitively.
type Promotion struct {
	Base
	Code            string          `db:"code"`
	Description     *string         `db:"description"`
	DiscountPercent decimal.Decimal `db:"discount_percent"`
	StartDate       time.Time       `db:"start_date"`
	EndDate         time.Time       `db:"end_date"`
}

// ActiveOn reports whether the promotion window covers the given moment.
// Both boundary dates are inclusive; comparison is at date granularity in UTC.
func (p *Promotion) ActiveOn(t time.Time) bool {
	day := dateOnly(t)
	return !day.Before(dateOnly(p.StartDate)) && !day.After(dateOnly(p.EndDate))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
