package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
	revoked  []string
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if f.sessions == nil {
		f.sessions = make(map[string]*entity.Session)
	}
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	session := f.sessions[token]
	if session == nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	delete(f.sessions, token)
	return nil
}

type fakeAuthTokenRepo struct {
	tokens map[uuid.UUID]*entity.AuthToken
	used   []uuid.UUID
}

func (f *fakeAuthTokenRepo) Create(ctx context.Context, token *entity.AuthToken) error {
	if f.tokens == nil {
		f.tokens = make(map[uuid.UUID]*entity.AuthToken)
	}
	f.tokens[token.Token] = token
	return nil
}

func (f *fakeAuthTokenRepo) FindValid(ctx context.Context, token uuid.UUID, kind entity.AuthTokenKind) (*entity.AuthToken, error) {
	found := f.tokens[token]
	if found == nil || found.Kind != kind || found.UsedAt != nil || found.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return found, nil
}

func (f *fakeAuthTokenRepo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	f.used = append(f.used, id)
	for _, token := range f.tokens {
		if token.ID == id {
			now := time.Now()
			token.UsedAt = &now
		}
	}
	return nil
}

var _ repository.SessionRepository = (*fakeSessionRepo)(nil)
var _ repository.AuthTokenRepository = (*fakeAuthTokenRepo)(nil)
var _ pgx.Tx = (*fakeTx)(nil)

type authFixture struct {
	service  AuthService
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	tokens   *fakeAuthTokenRepo
}

func newAuthFixture() *authFixture {
	users := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	sessions := &fakeSessionRepo{sessions: map[string]*entity.Session{}}
	tokens := &fakeAuthTokenRepo{tokens: map[uuid.UUID]*entity.AuthToken{}}

	repo := &repository.Repository{
		User:      users,
		Session:   sessions,
		AuthToken: tokens,
	}

	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
		Token:   utils.TokenConfig{VerificationExpiryHours: 24, ResetExpiryMinutes: 60},
	}

	return &authFixture{
		service:  NewAuthService(repo, &fakeDispatcher{}, config, zap.NewNop()),
		users:    users,
		sessions: sessions,
		tokens:   tokens,
	}
}

func (f *authFixture) addVerifiedUser(email, password string) *entity.User {
	hash, _ := utils.HashPassword(password)
	user := &entity.User{
		Base:          entity.NewBase(),
		Username:      "someone",
		Email:         email,
		PasswordHash:  hash,
		Role:          entity.RoleCustomer,
		EmailVerified: true,
		IsActive:      true,
	}
	f.users.users[user.ID] = user
	return user
}

func TestAuthRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an unverified customer and issues a token", func(t *testing.T) {
		f := newAuthFixture()

		res, err := f.service.Register(ctx, &request.RegisterRequest{
			Username: "newuser",
			Email:    "New.User@Example.com",
			Password: "hunter2hunter2",
		})

		require.NoError(t, err)
		assert.Equal(t, "new.user@example.com", res.Email)
		assert.Equal(t, "customer", res.Role)
		assert.False(t, res.EmailVerified)
		assert.Len(t, f.tokens.tokens, 1)
		for _, token := range f.tokens.tokens {
			assert.Equal(t, entity.AuthTokenEmailVerification, token.Kind)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		f := newAuthFixture()
		f.addVerifiedUser("taken@example.com", "password123")

		_, err := f.service.Register(ctx, &request.RegisterRequest{
			Username: "other",
			Email:    "TAKEN@example.com",
			Password: "password123",
		})

		requireKind(t, err, KindConflict)
	})
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a session for valid credentials", func(t *testing.T) {
		f := newAuthFixture()
		user := f.addVerifiedUser("login@example.com", "correct-horse")

		res, err := f.service.Login(ctx, &request.LoginRequest{
			Login:    "login@example.com",
			Password: "correct-horse",
		})

		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), res.User.ID)
		assert.NotEmpty(t, res.Token)

		session, err := f.sessions.FindValidSession(ctx, res.Token)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, user.ID, session.UserID)
	})

	t.Run("accepts the username instead of the email", func(t *testing.T) {
		f := newAuthFixture()
		user := f.addVerifiedUser("byname@example.com", "correct-horse")

		res, err := f.service.Login(ctx, &request.LoginRequest{
			Login:    user.Username,
			Password: "correct-horse",
		})

		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), res.User.ID)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		f := newAuthFixture()
		f.addVerifiedUser("login@example.com", "correct-horse")

		_, err := f.service.Login(ctx, &request.LoginRequest{
			Login:    "login@example.com",
			Password: "battery-staple",
		})

		requireKind(t, err, KindUnauthorized)
	})

	t.Run("rejects unverified accounts", func(t *testing.T) {
		f := newAuthFixture()
		user := f.addVerifiedUser("pending@example.com", "correct-horse")
		user.EmailVerified = false

		_, err := f.service.Login(ctx, &request.LoginRequest{
			Login:    "pending@example.com",
			Password: "correct-horse",
		})

		requireKind(t, err, KindUnauthorized)
	})
}

func TestAuthVerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the user verified and consumes the token", func(t *testing.T) {
		f := newAuthFixture()
		user := f.addVerifiedUser("verify@example.com", "password123")
		user.EmailVerified = false

		token := &entity.AuthToken{
			BaseSimple: entity.NewBaseSimple(),
			UserID:     user.ID,
			Token:      uuid.New(),
			Kind:       entity.AuthTokenEmailVerification,
			ExpiresAt:  time.Now().Add(time.Hour),
		}
		f.tokens.tokens[token.Token] = token

		err := f.service.VerifyEmail(ctx, token.Token.String())

		require.NoError(t, err)
		assert.True(t, user.EmailVerified)
		assert.Contains(t, f.tokens.used, token.ID)

		// Single use.
		err = f.service.VerifyEmail(ctx, token.Token.String())
		requireKind(t, err, KindInvalidInput)
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		f := newAuthFixture()
		user := f.addVerifiedUser("late@example.com", "password123")
		user.EmailVerified = false

		token := &entity.AuthToken{
			BaseSimple: entity.NewBaseSimple(),
			UserID:     user.ID,
			Token:      uuid.New(),
			Kind:       entity.AuthTokenEmailVerification,
			ExpiresAt:  time.Now().Add(-time.Minute),
		}
		f.tokens.tokens[token.Token] = token

		err := f.service.VerifyEmail(ctx, token.Token.String())
		requireKind(t, err, KindInvalidInput)
		assert.False(t, user.EmailVerified)
	})
}

func TestAuthPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("full reset flow", func(t *testing.T) {
		f := newAuthFixture()
		user := f.addVerifiedUser("reset@example.com", "old-password")

		require.NoError(t, f.service.ForgotPassword(ctx, "reset@example.com"))
		require.Len(t, f.tokens.tokens, 1)

		var raw uuid.UUID
		for tokenValue, token := range f.tokens.tokens {
			assert.Equal(t, entity.AuthTokenPasswordReset, token.Kind)
			raw = tokenValue
		}

		require.NoError(t, f.service.ResetPassword(ctx, raw.String(), "new-password-1"))
		assert.True(t, utils.CheckPasswordHash("new-password-1", user.PasswordHash))

		// Token is single use.
		err := f.service.ResetPassword(ctx, raw.String(), "another-password")
		requireKind(t, err, KindInvalidInput)
	})

	t.Run("unknown email is silently accepted", func(t *testing.T) {
		f := newAuthFixture()
		require.NoError(t, f.service.ForgotPassword(ctx, "ghost@example.com"))
		assert.Empty(t, f.tokens.tokens)
	})

	t.Run("change password requires the current one", func(t *testing.T) {
		f := newAuthFixture()
		user := f.addVerifiedUser("change@example.com", "current-pass")

		err := f.service.ChangePassword(ctx, user.ID, "wrong-pass", "new-pass-123")
		requireKind(t, err, KindUnauthorized)

		require.NoError(t, f.service.ChangePassword(ctx, user.ID, "current-pass", "new-pass-123"))
		assert.True(t, utils.CheckPasswordHash("new-pass-123", user.PasswordHash))
	})
}
