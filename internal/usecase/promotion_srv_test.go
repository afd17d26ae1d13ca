package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPromotionService(promos *fakePromotionRepo) PromotionService {
	return NewPromotionService(&repository.Repository{Promotion: promos}, zap.NewNop())
}

func TestPromotionValidate(t *testing.T) {
	ctx := context.Background()
	today := time.Now().UTC().Truncate(24 * time.Hour)

	active := &entity.Promotion{
		Base:            entity.NewBase(),
		Code:            "SAVE10",
		DiscountPercent: decimal.RequireFromString("10"),
		StartDate:       today.AddDate(0, 0, -1),
		EndDate:         today.AddDate(0, 0, 1),
	}
	promos := &fakePromotionRepo{promos: map[string]*entity.Promotion{"SAVE10": active}}
	service := newPromotionService(promos)

	t.Run("matches codes case-insensitively", func(t *testing.T) {
		res, err := service.Validate(ctx, "save10")
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", res.Code)
		assert.Equal(t, "10.00", res.DiscountPercent)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := service.Validate(ctx, "MISSING")
		requireKind(t, err, KindNotFound)
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		boundary := &entity.Promotion{
			Base:            entity.NewBase(),
			Code:            "TODAY",
			DiscountPercent: decimal.RequireFromString("5"),
			StartDate:       today,
			EndDate:         today,
		}
		promos.promos["TODAY"] = boundary

		res, err := service.Validate(ctx, "TODAY")
		require.NoError(t, err)
		assert.Equal(t, "TODAY", res.Code)
	})

	t.Run("expired code", func(t *testing.T) {
		expired := &entity.Promotion{
			Base:            entity.NewBase(),
			Code:            "GONE",
			DiscountPercent: decimal.RequireFromString("5"),
			StartDate:       today.AddDate(0, 0, -10),
			EndDate:         today.AddDate(0, 0, -1),
		}
		promos.promos["GONE"] = expired

		_, err := service.Validate(ctx, "GONE")
		requireKind(t, err, KindInvalidState)
	})

	t.Run("not yet started", func(t *testing.T) {
		upcoming := &entity.Promotion{
			Base:            entity.NewBase(),
			Code:            "SOON",
			DiscountPercent: decimal.RequireFromString("5"),
			StartDate:       today.AddDate(0, 0, 1),
			EndDate:         today.AddDate(0, 0, 10),
		}
		promos.promos["SOON"] = upcoming

		_, err := service.Validate(ctx, "SOON")
		requireKind(t, err, KindInvalidState)
	})
}

func TestPromotionCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the code uppercase", func(t *testing.T) {
		service := newPromotionService(&fakePromotionRepo{promos: map[string]*entity.Promotion{}})

		res, err := service.Create(ctx, &request.PromotionRequest{
			Code:            "summer20",
			DiscountPercent: "20",
			StartDate:       time.Now(),
			EndDate:         time.Now().AddDate(0, 1, 0),
		})

		require.NoError(t, err)
		assert.Equal(t, "SUMMER20", res.Code)
	})

	t.Run("rejects duplicate codes", func(t *testing.T) {
		promos := &fakePromotionRepo{promos: map[string]*entity.Promotion{}}
		service := newPromotionService(promos)

		req := &request.PromotionRequest{
			Code:            "ONCE",
			DiscountPercent: "15",
			StartDate:       time.Now(),
			EndDate:         time.Now().AddDate(0, 1, 0),
		}

		_, err := service.Create(ctx, req)
		require.NoError(t, err)

		_, err = service.Create(ctx, req)
		requireKind(t, err, KindConflict)
	})

	t.Run("rejects percent above 100", func(t *testing.T) {
		service := newPromotionService(&fakePromotionRepo{promos: map[string]*entity.Promotion{}})

		_, err := service.Create(ctx, &request.PromotionRequest{
			Code:            "BIG",
			DiscountPercent: "120",
			StartDate:       time.Now(),
			EndDate:         time.Now().AddDate(0, 1, 0),
		})

		requireKind(t, err, KindInvalidInput)
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		service := newPromotionService(&fakePromotionRepo{promos: map[string]*entity.Promotion{}})

		_, err := service.Create(ctx, &request.PromotionRequest{
			Code:            "BACKWARDS",
			DiscountPercent: "10",
			StartDate:       time.Now(),
			EndDate:         time.Now().AddDate(0, 0, -1),
		})

		requireKind(t, err, KindInvalidInput)
	})
}
