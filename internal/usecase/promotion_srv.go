package usecase

import (
	"context"
	"strings"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/dto/response"
	"cinema-ebooking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PromotionService interface {
	// Validate checks a code for use at checkout. NotFound for unknown
	// codes, InvalidState for codes outside their window.
	Validate(ctx context.Context, code string) (*response.PromotionResponse, error)

	FindAll(ctx context.Context, page, perPage int) (*response.PromotionListResponse, error)
	Create(ctx context.Context, req *request.PromotionRequest) (*response.PromotionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.PromotionRequest) (*response.PromotionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type promotionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPromotionService(repo *repository.Repository, log *zap.Logger) PromotionService {
	return &promotionService{
		repo: repo,
		log:  log.With(zap.String("service", "promotion")),
	}
}

func (s *promotionService) Validate(ctx context.Context, code string) (*response.PromotionResponse, error) {
	promo, err := s.repo.Promotion.FindByCode(ctx, code)
	if err != nil {
		return nil, errInternal("failed to load promotion", err)
	}
	if promo == nil {
		return nil, ErrNotFound("promotion code not found")
	}
	if !promo.ActiveOn(time.Now()) {
		return nil, ErrInvalidState("promotion code is not active")
	}

	return response.NewPromotionResponse(promo), nil
}

func (s *promotionService) FindAll(ctx context.Context, page, perPage int) (*response.PromotionListResponse, error) {
	offset := utils.CalculateOffset(page, perPage)

	promos, err := s.repo.Promotion.FindAll(ctx, perPage, offset)
	if err != nil {
		return nil, errInternal("failed to load promotions", err)
	}

	total, err := s.repo.Promotion.CountAll(ctx)
	if err != nil {
		return nil, errInternal("failed to count promotions", err)
	}

	list := &response.PromotionListResponse{
		Promotions: make([]*response.PromotionResponse, 0, len(promos)),
		Pagination: response.Pagination{
			Page:       page,
			PerPage:    perPage,
			TotalItems: total,
			TotalPages: utils.CalculateTotalPages(total, perPage),
		},
	}

	for _, promo := range promos {
		list.Promotions = append(list.Promotions, response.NewPromotionResponse(promo))
	}

	return list, nil
}

func (s *promotionService) Create(ctx context.Context, req *request.PromotionRequest) (*response.PromotionResponse, error) {
	percent, promo, err := s.parsePromotionRequest(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Promotion.FindByCode(ctx, req.Code)
	if err != nil {
		return nil, errInternal("failed to check promotion code", err)
	}
	if existing != nil {
		return nil, ErrConflict("promotion code already exists")
	}

	promo.Base = entity.NewBase()
	promo.DiscountPercent = percent

	if err := s.repo.Promotion.Create(ctx, promo); err != nil {
		return nil, errInternal("failed to create promotion", err)
	}

	s.log.Info("Promotion created",
		zap.String("promotion_id", promo.ID.String()),
		zap.String("code", promo.Code),
	)

	return response.NewPromotionResponse(promo), nil
}

func (s *promotionService) Update(ctx context.Context, id uuid.UUID, req *request.PromotionRequest) (*response.PromotionResponse, error) {
	percent, parsed, err := s.parsePromotionRequest(req)
	if err != nil {
		return nil, err
	}

	promo, err := s.repo.Promotion.FindByID(ctx, id)
	if err != nil {
		return nil, errInternal("failed to load promotion", err)
	}
	if promo == nil {
		return nil, ErrNotFound("promotion not found")
	}

	byCode, err := s.repo.Promotion.FindByCode(ctx, req.Code)
	if err != nil {
		return nil, errInternal("failed to check promotion code", err)
	}
	if byCode != nil && byCode.ID != id {
		return nil, ErrConflict("promotion code already exists")
	}

	promo.Code = parsed.Code
	promo.Description = parsed.Description
	promo.DiscountPercent = percent
	promo.StartDate = parsed.StartDate
	promo.EndDate = parsed.EndDate
	promo.UpdatedAt = time.Now()

	if err := s.repo.Promotion.Update(ctx, promo); err != nil {
		return nil, errInternal("failed to update promotion", err)
	}

	return response.NewPromotionResponse(promo), nil
}

func (s *promotionService) Delete(ctx context.Context, id uuid.UUID) error {
	promo, err := s.repo.Promotion.FindByID(ctx, id)
	if err != nil {
		return errInternal("failed to load promotion", err)
	}
	if promo == nil {
		return ErrNotFound("promotion not found")
	}

	if err := s.repo.Promotion.Delete(ctx, id); err != nil {
		return errInternal("failed to delete promotion", err)
	}

	s.log.Info("Promotion deleted", zap.String("promotion_id", id.String()))
	return nil
}

func (s *promotionService) parsePromotionRequest(req *request.PromotionRequest) (decimal.Decimal, *entity.Promotion, error) {
	percent, err := decimal.NewFromString(req.DiscountPercent)
	if err != nil {
		return decimal.Zero, nil, ErrInvalidInput("discount percent must be a decimal number")
	}
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, nil, ErrInvalidInput("discount percent must be between 0 and 100")
	}

	if req.EndDate.Before(req.StartDate) {
		return decimal.Zero, nil, ErrInvalidInput("end date must not be before start date")
	}

	return percent, &entity.Promotion{
		Code:        strings.ToUpper(req.Code),
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}, nil
}
