package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseTicketType(t *testing.T) {
	tests := []struct {
		in   string
		want TicketType
		ok   bool
	}{
		{"ADULT", TicketTypeAdult, true},
		{"adult", TicketTypeAdult, true},
		{" Student ", TicketTypeStudent, true},
		{"CHILD", TicketTypeChild, true},
		{"senior", TicketTypeSenior, true},
		{"", "", false},
		{"INFANT", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseTicketType(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestTicketTypeMultiplier(t *testing.T) {
	assert.Equal(t, "1", TicketTypeAdult.Multiplier().String())
	assert.Equal(t, "0.9", TicketTypeStudent.Multiplier().String())
	assert.Equal(t, "0.8", TicketTypeChild.Multiplier().String())
	assert.Equal(t, "0.85", TicketTypeSenior.Multiplier().String())
}

func TestNewDefaultGrid(t *testing.T) {
	showroomID := uuid.New()
	grid := NewDefaultGrid(showroomID)

	assert.Len(t, grid, len(DefaultSeatRows)*DefaultSeatsPerRow)
	assert.Equal(t, "A1", grid[0].Label())
	assert.Equal(t, "H12", grid[len(grid)-1].Label())

	seen := make(map[string]bool)
	for _, seat := range grid {
		assert.Equal(t, showroomID, seat.ShowroomID)
		assert.False(t, seen[seat.Label()], "duplicate seat %s", seat.Label())
		seen[seat.Label()] = true
	}
}

func TestPromotionActiveOn(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	promo := &Promotion{StartDate: start, EndDate: end}

	assert.False(t, promo.ActiveOn(time.Date(2026, 2, 28, 23, 59, 0, 0, time.UTC)))
	assert.True(t, promo.ActiveOn(start))
	assert.True(t, promo.ActiveOn(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)))
	// End date is inclusive through the whole day.
	assert.True(t, promo.ActiveOn(time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, promo.ActiveOn(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDetectCardBrand(t *testing.T) {
	assert.Equal(t, "visa", DetectCardBrand("4242 4242 4242 4242"))
	assert.Equal(t, "mastercard", DetectCardBrand("5500000000000004"))
	assert.Equal(t, "amex", DetectCardBrand("371449635398431"))
	assert.Equal(t, "discover", DetectCardBrand("6011000990139424"))
	assert.Equal(t, "card", DetectCardBrand("9999999999999999"))
}

func TestCardLast4(t *testing.T) {
	assert.Equal(t, "4242", CardLast4("4242 4242 4242 4242"))
	assert.Equal(t, "123", CardLast4("123"))
}
