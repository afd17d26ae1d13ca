package usecase

import (
	"context"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/dto/response"
	"cinema-ebooking/internal/notify"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	Profile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)

	ListPaymentCards(ctx context.Context, userID uuid.UUID) ([]*response.PaymentCardResponse, error)
	AddPaymentCard(ctx context.Context, userID uuid.UUID, req *request.CreatePaymentCardRequest) (*response.PaymentCardResponse, error)
	UpdatePaymentCard(ctx context.Context, userID, cardID uuid.UUID, req *request.UpdatePaymentCardRequest) (*response.PaymentCardResponse, error)
	DeletePaymentCard(ctx context.Context, userID, cardID uuid.UUID) error
}

type userService struct {
	repo     *repository.Repository
	notifier notify.Dispatcher
	log      *zap.Logger
}

func NewUserService(repo *repository.Repository, notifier notify.Dispatcher, log *zap.Logger) UserService {
	return &userService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) Profile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, errInternal("failed to load user", err)
	}
	if user == nil {
		return nil, ErrNotFound("user not found")
	}

	return response.NewUserResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, errInternal("failed to load user", err)
	}
	if user == nil {
		return nil, ErrNotFound("user not found")
	}

	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, errInternal("failed to update user", err)
	}

	go s.notifier.SendProfileUpdated(user)

	return response.NewUserResponse(user), nil
}

func (s *userService) ListPaymentCards(ctx context.Context, userID uuid.UUID) ([]*response.PaymentCardResponse, error) {
	cards, err := s.repo.PaymentCard.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errInternal("failed to load payment cards", err)
	}

	res := make([]*response.PaymentCardResponse, 0, len(cards))
	for _, card := range cards {
		res = append(res, response.NewPaymentCardResponse(card))
	}

	return res, nil
}

func (s *userService) AddPaymentCard(ctx context.Context, userID uuid.UUID, req *request.CreatePaymentCardRequest) (*response.PaymentCardResponse, error) {
	count, err := s.repo.PaymentCard.CountByUserID(ctx, userID)
	if err != nil {
		return nil, errInternal("failed to count payment cards", err)
	}
	if count >= entity.MaxCardsPerUser {
		return nil, ErrInvalidState("payment card limit reached (%d cards)", entity.MaxCardsPerUser)
	}

	card := &entity.PaymentCard{
		Base:           entity.NewBase(),
		UserID:         userID,
		CardholderName: req.CardholderName,
		Brand:          entity.DetectCardBrand(req.CardNumber),
		Last4:          entity.CardLast4(req.CardNumber),
		ExpMonth:       req.ExpMonth,
		ExpYear:        req.ExpYear,
	}

	if err := s.repo.PaymentCard.Create(ctx, card); err != nil {
		return nil, errInternal("failed to create payment card", err)
	}

	s.log.Info("Payment card added",
		zap.String("user_id", userID.String()),
		zap.String("brand", card.Brand),
	)

	return response.NewPaymentCardResponse(card), nil
}

func (s *userService) UpdatePaymentCard(ctx context.Context, userID, cardID uuid.UUID, req *request.UpdatePaymentCardRequest) (*response.PaymentCardResponse, error) {
	card, err := s.findOwnedCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}

	card.CardholderName = req.CardholderName
	card.ExpMonth = req.ExpMonth
	card.ExpYear = req.ExpYear
	card.UpdatedAt = time.Now()

	if err := s.repo.PaymentCard.Update(ctx, card); err != nil {
		return nil, errInternal("failed to update payment card", err)
	}

	return response.NewPaymentCardResponse(card), nil
}

func (s *userService) DeletePaymentCard(ctx context.Context, userID, cardID uuid.UUID) error {
	if _, err := s.findOwnedCard(ctx, userID, cardID); err != nil {
		return err
	}

	if err := s.repo.PaymentCard.Delete(ctx, cardID); err != nil {
		return errInternal("failed to delete payment card", err)
	}

	return nil
}

func (s *userService) findOwnedCard(ctx context.Context, userID, cardID uuid.UUID) (*entity.PaymentCard, error) {
	card, err := s.repo.PaymentCard.FindByID(ctx, cardID)
	if err != nil {
		return nil, errInternal("failed to load payment card", err)
	}
	if card == nil || card.UserID != userID {
		return nil, ErrNotFound("payment card not found")
	}
	return card, nil
}
