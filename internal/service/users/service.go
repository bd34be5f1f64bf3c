package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-CourtBookingService/internal/access"
	"github.com/m04kA/SMC-CourtBookingService/internal/auth"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/users/models"
)

// Service сервис пользователей: регистрация и управление профилями.
// Изменять и удалять профиль может его владелец или администратор.
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя. Email приводится к нижнему
// регистру, пароль хешируется bcrypt'ом, роль по умолчанию — user.
func (s *Service) Register(ctx context.Context, req *models.RegisterUserRequest) (*models.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Register: registering user email=%s", email)

	if err := validateRegistration(req, email); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", email, err)
		return nil, err
	}

	role := domain.RoleUser
	if req.Role != nil {
		role = domain.UserRole(*req.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *req.Role)
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	var phone string
	if req.Phone != nil {
		phone = strings.TrimSpace(*req.Phone)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email=%s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user id=%d", user.ID)
	return models.FromDomainUser(user), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	s.logger.Info("GetByID: fetching user id=%d", id)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// GetAll получает всех пользователей
func (s *Service) GetAll(ctx context.Context) (*models.UserListResponse, error) {
	s.logger.Info("GetAll: fetching all users")

	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: fetched %d users", len(users))
	return models.FromDomainUserList(users), nil
}

// Update частично обновляет профиль. Новый пароль перехешируется.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateUserRequest, principal *auth.Principal) (*models.UserResponse, error) {
	s.logger.Info("Update: updating user id=%d by user=%d", id, principal.UserID)

	if !access.CanModifyUser(principal, id) {
		s.logger.Warn("Update: user=%d is not allowed to modify user id=%d", principal.UserID, id)
		return nil, ErrAccessDenied
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Update: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
		user.Name = name
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !validEmail(email) {
			return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
		}
		user.Email = email
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Password != nil {
		if len(*req.Password) < domain.MinPasswordLength {
			return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			s.logger.Error("Update: failed to hash password: %v", err)
			return nil, fmt.Errorf("%w: Update - hash password: %v", ErrInternal, err)
		}
		user.PasswordHash = hash
	}

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Update: email=%s already registered", user.Email)
			return nil, ErrEmailTaken
		}
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated user id=%d", id)
	return models.FromDomainUser(updated), nil
}

// Delete удаляет профиль пользователя
func (s *Service) Delete(ctx context.Context, id int64, principal *auth.Principal) error {
	s.logger.Info("Delete: deleting user id=%d by user=%d", id, principal.UserID)

	if !access.CanModifyUser(principal, id) {
		s.logger.Warn("Delete: user=%d is not allowed to delete user id=%d", principal.UserID, id)
		return ErrAccessDenied
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Delete: user id=%d not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted user id=%d", id)
	return nil
}

func validateRegistration(req *models.RegisterUserRequest, email string) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !validEmail(email) {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	return nil
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
