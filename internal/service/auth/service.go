package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	authpkg "github.com/m04kA/SMC-CourtBookingService/internal/auth"
	userRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/auth/models"
	usermodels "github.com/m04kA/SMC-CourtBookingService/internal/service/users/models"
)

// Service сервис аутентификации: проверка пароля и выпуск JWT
type Service struct {
	userRepo UserRepository
	tokens   TokenIssuer
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login проверяет учетные данные и возвращает подписанный JWT
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Login: attempt for email=%s", email)

	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := authpkg.ComparePassword(user.PasswordHash, req.Password); err != nil {
		s.logger.Warn("Login: password mismatch for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return &models.LoginResponse{
		AccessToken: token,
		User:        usermodels.FromDomainUser(user),
	}, nil
}
