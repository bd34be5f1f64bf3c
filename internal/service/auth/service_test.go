package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authpkg "github.com/m04kA/SMC-CourtBookingService/internal/auth"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/auth/models"
)

type stubRepo struct {
	users map[string]*domain.User
}

func (s *stubRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

type stubIssuer struct {
	token string
	err   error
}

func (s *stubIssuer) Generate(*domain.User) (string, error) {
	return s.token, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(t *testing.T) *Service {
	t.Helper()
	hash, err := authpkg.HashPassword("secret123")
	require.NoError(t, err)
	repo := &stubRepo{users: map[string]*domain.User{
		"ivan@example.com": {ID: 1, Name: "Иван", Email: "ivan@example.com", PasswordHash: hash, Role: domain.RoleUser},
	}}
	return NewService(repo, &stubIssuer{token: "signed-token"}, nopLogger{})
}

func TestLogin(t *testing.T) {
	svc := newService(t)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "  IVAN@example.com ",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.AccessToken)
	assert.Equal(t, int64(1), resp.User.ID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newService(t)

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newService(t)

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ivan@example.com",
		Password: "wrong",
	})
	// та же ошибка, что и для неизвестного email
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EmptyInput(t *testing.T) {
	svc := newService(t)

	_, err := svc.Login(context.Background(), &models.LoginRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
