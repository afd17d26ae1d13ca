package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeatMap(t *testing.T) {
	ctx := context.Background()

	showroom := &entity.Showroom{Base: entity.NewBase(), Name: "Room 1", Capacity: 96}
	showtime := &entity.Showtime{
		Base:       entity.NewBase(),
		MovieID:    uuid.New(),
		ShowroomID: showroom.ID,
		StartsAt:   time.Now().Add(time.Hour),
		Format:     "2D",
		BasePrice:  decimal.RequireFromString("12.00"),
	}

	seats := &fakeSeatRepo{seats: map[uuid.UUID]*entity.Seat{}}
	tickets := &fakeTicketRepo{}
	showrooms := &fakeShowroomRepo{showrooms: map[uuid.UUID]*entity.Showroom{showroom.ID: showroom}}

	repo := &repository.Repository{
		Showroom: showrooms,
		Seat:     seats,
		Showtime: &fakeShowtimeRepo{showtimes: map[uuid.UUID]*entity.Showtime{showtime.ID: showtime}},
		Ticket:   tickets,
	}

	tx := &fakeTx{}
	service := NewShowtimeService(repo, &fakeDB{tx: tx}, zap.NewNop())

	t.Run("provisions the default grid on first request", func(t *testing.T) {
		seatMap, err := service.SeatMap(ctx, showtime.ID)

		require.NoError(t, err)
		assert.Len(t, seatMap.Seats, len(entity.DefaultSeatRows)*entity.DefaultSeatsPerRow)
		assert.Equal(t, []uuid.UUID{showroom.ID}, showrooms.locked)
		assert.True(t, tx.committed)

		for _, seat := range seatMap.Seats {
			assert.False(t, seat.Reserved)
		}
	})

	t.Run("does not provision twice", func(t *testing.T) {
		_, err := service.SeatMap(ctx, showtime.ID)

		require.NoError(t, err)
		assert.Len(t, showrooms.locked, 1)
		count, _ := seats.CountByShowroomID(ctx, showroom.ID)
		assert.EqualValues(t, len(entity.DefaultSeatRows)*entity.DefaultSeatsPerRow, count)
	})

	t.Run("flags reserved seats", func(t *testing.T) {
		var someSeat *entity.Seat
		for _, seat := range seats.seats {
			someSeat = seat
			break
		}
		tickets.reserved = []uuid.UUID{someSeat.ID}

		seatMap, err := service.SeatMap(ctx, showtime.ID)
		require.NoError(t, err)

		reservedCount := 0
		for _, seat := range seatMap.Seats {
			if seat.Reserved {
				reservedCount++
				assert.Equal(t, someSeat.ID.String(), seat.ID)
			}
		}
		assert.Equal(t, 1, reservedCount)
	})

	t.Run("unknown showtime", func(t *testing.T) {
		_, err := service.SeatMap(ctx, uuid.New())
		requireKind(t, err, KindNotFound)
	})
}
