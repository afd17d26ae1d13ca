package usecase

import (
	"testing"

	"cinema-ebooking/internal/data/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTicketPrice(t *testing.T) {
	base := decimal.RequireFromString("12.00")

	tests := []struct {
		ticketType entity.TicketType
		want       string
	}{
		{entity.TicketTypeAdult, "12.00"},
		{entity.TicketTypeStudent, "10.80"},
		{entity.TicketTypeChild, "9.60"},
		{entity.TicketTypeSenior, "10.20"},
	}

	for _, tt := range tests {
		t.Run(string(tt.ticketType), func(t *testing.T) {
			got := ticketPrice(base, tt.ticketType)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestApplyDiscount(t *testing.T) {
	t.Run("ten percent off", func(t *testing.T) {
		subtotal := decimal.RequireFromString("21.60")
		discount, total := applyDiscount(subtotal, decimal.RequireFromString("10"))

		assert.Equal(t, "2.16", discount.StringFixed(2))
		assert.Equal(t, "19.44", total.StringFixed(2))
	})

	t.Run("rounds half cents up", func(t *testing.T) {
		// 10.05 * 10% = 1.005, rounds to 1.01
		discount, total := applyDiscount(decimal.RequireFromString("10.05"), decimal.RequireFromString("10"))

		assert.Equal(t, "1.01", discount.StringFixed(2))
		assert.Equal(t, "9.04", total.StringFixed(2))
	})

	t.Run("full discount clamps at zero", func(t *testing.T) {
		discount, total := applyDiscount(decimal.RequireFromString("15.00"), decimal.RequireFromString("100"))

		assert.Equal(t, "15.00", discount.StringFixed(2))
		assert.True(t, total.IsZero())
	})

	t.Run("zero percent", func(t *testing.T) {
		discount, total := applyDiscount(decimal.RequireFromString("15.00"), decimal.Zero)

		assert.True(t, discount.IsZero())
		assert.Equal(t, "15.00", total.StringFixed(2))
	})

	t.Run("fractional percent", func(t *testing.T) {
		// 33.33 * 12.5% = 4.166..., rounds to 4.17
		discount, total := applyDiscount(decimal.RequireFromString("33.33"), decimal.RequireFromString("12.5"))

		assert.Equal(t, "4.17", discount.StringFixed(2))
		assert.Equal(t, "29.16", total.StringFixed(2))
	})
}
