package update_user

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/auth"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/users/models"
)

type UserService interface {
	Update(ctx context.Context, id int64, req *models.UpdateUserRequest, principal *auth.Principal) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
