package usecase

import (
	"context"
	"strings"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/dto/response"
	"cinema-ebooking/internal/notify"
	"cinema-ebooking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	VerifyEmail(ctx context.Context, rawToken string) error
	ResendVerification(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, rawToken, newPassword string) error
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

type authService struct {
	repo     *repository.Repository
	notifier notify.Dispatcher
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(repo *repository.Repository, notifier notify.Dispatcher, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:     repo,
		notifier: notifier,
		config:   config,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, errInternal("failed to check email", err)
	}
	if existing != nil {
		return nil, ErrConflict("email is already registered")
	}

	existing, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, errInternal("failed to check username", err)
	}
	if existing != nil {
		return nil, ErrConflict("username is already taken")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errInternal("failed to hash password", err)
	}

	user := &entity.User{
		Base:         entity.NewBase(),
		Username:     req.Username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, errInternal("failed to create user", err)
	}

	if err := s.issueVerification(ctx, user); err != nil {
		// Account exists; the user can request a new link.
		s.log.Error("Failed to issue verification token", zap.Error(err),
			zap.String("user_id", user.ID.String()))
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return response.NewUserResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	login := strings.TrimSpace(req.Login)

	var user *entity.User
	var err error
	if strings.Contains(login, "@") {
		user, err = s.repo.User.FindByEmail(ctx, strings.ToLower(login))
	} else {
		user, err = s.repo.User.FindByUsername(ctx, login)
	}
	if err != nil {
		return nil, errInternal("failed to load user", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrUnauthorized("invalid login or password")
	}
	if !user.IsActive {
		return nil, ErrUnauthorized("account is suspended")
	}
	if !user.EmailVerified {
		return nil, ErrUnauthorized("email address is not verified")
	}

	session := &entity.Session{
		BaseSimple: entity.NewBaseSimple(),
		UserID:     user.ID,
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, errInternal("failed to create session", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.LoginResponse{
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
		User:      response.NewUserResponse(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		return errInternal("failed to revoke session", err)
	}
	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, rawToken string) error {
	token, err := uuid.Parse(rawToken)
	if err != nil {
		return ErrInvalidInput("invalid verification token")
	}

	authToken, err := s.repo.AuthToken.FindValid(ctx, token, entity.AuthTokenEmailVerification)
	if err != nil {
		return errInternal("failed to load verification token", err)
	}
	if authToken == nil {
		return ErrInvalidInput("verification token is invalid or expired")
	}

	user, err := s.repo.User.FindByID(ctx, authToken.UserID)
	if err != nil {
		return errInternal("failed to load user", err)
	}
	if user == nil {
		return ErrNotFound("user not found")
	}

	if err := s.repo.AuthToken.MarkUsed(ctx, authToken.ID); err != nil {
		return errInternal("failed to consume token", err)
	}

	if !user.EmailVerified {
		user.EmailVerified = true
		user.UpdatedAt = time.Now()
		if err := s.repo.User.Update(ctx, user); err != nil {
			return errInternal("failed to mark email verified", err)
		}
	}

	s.log.Info("Email verified", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.repo.User.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return errInternal("failed to load user", err)
	}
	// Respond identically whether or not the address exists.
	if user == nil {
		return nil
	}
	if user.EmailVerified {
		return ErrInvalidState("email address is already verified")
	}

	if err := s.issueVerification(ctx, user); err != nil {
		return errInternal("failed to issue verification token", err)
	}

	return nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.User.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return errInternal("failed to load user", err)
	}
	if user == nil {
		return nil
	}

	token := &entity.AuthToken{
		BaseSimple: entity.NewBaseSimple(),
		UserID:     user.ID,
		Token:      uuid.New(),
		Kind:       entity.AuthTokenPasswordReset,
		ExpiresAt:  time.Now().Add(time.Duration(s.config.Token.ResetExpiryMinutes) * time.Minute),
	}

	if err := s.repo.AuthToken.Create(ctx, token); err != nil {
		return errInternal("failed to create reset token", err)
	}

	go s.notifier.SendPasswordReset(user, token.Token)
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	token, err := uuid.Parse(rawToken)
	if err != nil {
		return ErrInvalidInput("invalid reset token")
	}

	authToken, err := s.repo.AuthToken.FindValid(ctx, token, entity.AuthTokenPasswordReset)
	if err != nil {
		return errInternal("failed to load reset token", err)
	}
	if authToken == nil {
		return ErrInvalidInput("reset token is invalid or expired")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return errInternal("failed to hash password", err)
	}

	if err := s.repo.AuthToken.MarkUsed(ctx, authToken.ID); err != nil {
		return errInternal("failed to consume token", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, authToken.UserID, hash); err != nil {
		return errInternal("failed to update password", err)
	}

	s.log.Info("Password reset", zap.String("user_id", authToken.UserID.String()))
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return errInternal("failed to load user", err)
	}
	if user == nil {
		return ErrNotFound("user not found")
	}

	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return ErrUnauthorized("current password is incorrect")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return errInternal("failed to hash password", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, userID, hash); err != nil {
		return errInternal("failed to update password", err)
	}

	s.log.Info("Password changed", zap.String("user_id", userID.String()))
	return nil
}

func (s *authService) issueVerification(ctx context.Context, user *entity.User) error {
	token := &entity.AuthToken{
		BaseSimple: entity.NewBaseSimple(),
		UserID:     user.ID,
		Token:      uuid.New(),
		Kind:       entity.AuthTokenEmailVerification,
		ExpiresAt:  time.Now().Add(time.Duration(s.config.Token.VerificationExpiryHours) * time.Hour),
	}

	if err := s.repo.AuthToken.Create(ctx, token); err != nil {
		return err
	}

	go s.notifier.SendVerification(user, token.Token)
	return nil
}
