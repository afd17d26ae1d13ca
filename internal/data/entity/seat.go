package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// Default grid used when a showroom has never had seats provisioned:
// rows A-H, 12 seats per row.
const (
	DefaultSeatRows    = "ABCDEFGH"
	DefaultSeatsPerRow = 12
)

type Seat struct {
	BaseSimple
	ShowroomID uuid.UUID `db:"showroom_id"`
	Row        string    `db:"seat_row"`    // A, B, C, ...
	Number     int       `db:"seat_number"` // 1, 2, 3, ...
}

// Label returns the display name of the seat, e.g. "A1".
func (s *Seat) Label() string {
	return fmt.Sprintf("%s%d", s.Row, s.Number)
}

// NewDefaultGrid builds the default seat grid for a showroom. Seats are
// ordered row-major so provisioning is deterministic.
func NewDefaultGrid(showroomID uuid.UUID) []*Seat {
	seats := make([]*Seat, 0, len(DefaultSeatRows)*DefaultSeatsPerRow)
	for _, row := range DefaultSeatRows {
		for num := 1; num <= DefaultSeatsPerRow; num++ {
			seats = append(seats, &Seat{
				BaseSimple: NewBaseSimple(),
				ShowroomID: showroomID,
				Row:        string(row),
				Number:     num,
			})
		}
	}
	return seats
}
