package usecase

import (
	"context"
	"fmt"
	"testing"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPaymentCards(t *testing.T) {
	ctx := context.Background()

	user := &entity.User{Base: entity.NewBase(), Username: "cardholder", Email: "c@example.com", IsActive: true}
	cards := &fakePaymentCardRepo{cards: map[uuid.UUID]*entity.PaymentCard{}}
	repo := &repository.Repository{
		User:        &fakeUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}},
		PaymentCard: cards,
	}
	service := NewUserService(repo, &fakeDispatcher{}, zap.NewNop())

	t.Run("stores only brand, last four and expiry", func(t *testing.T) {
		res, err := service.AddPaymentCard(ctx, user.ID, &request.CreatePaymentCardRequest{
			CardholderName: "C Holder",
			CardNumber:     "4242 4242 4242 4242",
			ExpMonth:       12,
			ExpYear:        2030,
		})

		require.NoError(t, err)
		assert.Equal(t, "visa", res.Brand)
		assert.Equal(t, "4242", res.Last4)

		stored, err := cards.FindByID(ctx, uuid.MustParse(res.ID))
		require.NoError(t, err)
		assert.Equal(t, "4242", stored.Last4)
	})

	t.Run("enforces the card limit", func(t *testing.T) {
		for i := 0; ; i++ {
			_, err := service.AddPaymentCard(ctx, user.ID, &request.CreatePaymentCardRequest{
				CardholderName: "C Holder",
				CardNumber:     fmt.Sprintf("400000000000%04d", i),
				ExpMonth:       1,
				ExpYear:        2031,
			})
			if err != nil {
				requireKind(t, err, KindInvalidState)
				break
			}
			require.Less(t, i, entity.MaxCardsPerUser, "limit never enforced")
		}

		count, _ := cards.CountByUserID(ctx, user.ID)
		assert.EqualValues(t, entity.MaxCardsPerUser, count)
	})

	t.Run("cannot touch another user's card", func(t *testing.T) {
		var anyCard *entity.PaymentCard
		for _, card := range cards.cards {
			anyCard = card
			break
		}

		err := service.DeletePaymentCard(ctx, uuid.New(), anyCard.ID)
		requireKind(t, err, KindNotFound)
	})
}
