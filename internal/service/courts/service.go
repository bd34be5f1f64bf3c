package courts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

// Service сервис управления кортами. Создание, обновление и удаление
// доступны только администраторам — проверка роли выполняется на роутере.
type Service struct {
	courtRepo CourtRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// Create создает новый корт
func (s *Service) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Create: creating court name=%q", req.Name)

	name := strings.TrimSpace(req.Name)
	if err := validateCourtFields(name, req.Description); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	court, err := s.courtRepo.Create(ctx, &domain.Court{
		Name:        name,
		Description: req.Description,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created court id=%d", court.ID)
	return models.FromDomainCourt(court), nil
}

// GetByID получает корт по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	s.logger.Info("GetByID: fetching court id=%d", id)

	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("GetByID: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("GetByID: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourt(court), nil
}

// GetAll получает все корты по алфавиту
func (s *Service) GetAll(ctx context.Context) (*models.CourtListResponse, error) {
	s.logger.Info("GetAll: fetching all courts")

	courts, err := s.courtRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: fetched %d courts", len(courts))
	return models.FromDomainCourtList(courts), nil
}

// Update частично обновляет корт: только переданные поля
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Update: updating court id=%d", id)

	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Update: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		court.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		court.Description = req.Description
	}

	if err := validateCourtFields(court.Name, court.Description); err != nil {
		s.logger.Warn("Update: validation failed for court id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.courtRepo.Update(ctx, court)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated court id=%d", id)
	return models.FromDomainCourt(updated), nil
}

// Delete удаляет корт
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting court id=%d", id)

	if err := s.courtRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Delete: court id=%d not found", id)
			return ErrCourtNotFound
		}
		s.logger.Error("Delete: repository error for court id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted court id=%d", id)
	return nil
}

func validateCourtFields(name string, description *string) error {
	if name == "" {
		return fmt.Errorf("%w: court name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > domain.MaxCourtNameLength {
		return fmt.Errorf("%w: court name must be at most %d characters", ErrInvalidInput, domain.MaxCourtNameLength)
	}
	if description != nil && len([]rune(*description)) > domain.MaxCourtDescriptionLength {
		return fmt.Errorf("%w: court description must be at most %d characters", ErrInvalidInput, domain.MaxCourtDescriptionLength)
	}
	return nil
}
