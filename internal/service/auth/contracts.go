package auth

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TokenIssuer выпускает JWT для аутентифицированного пользователя
type TokenIssuer interface {
	Generate(user *domain.User) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
