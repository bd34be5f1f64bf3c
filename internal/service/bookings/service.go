package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/access"
	"github.com/m04kA/SMC-CourtBookingService/internal/auth"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

// Service сервис запросов к бронированиям: чтение, списки и удаление.
// Создание и обновление живут в отдельных use case'ах из-за проверки пересечений.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Чтение доступно любому аутентифицированному пользователю.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetAll получает все бронирования, новые по времени начала — первыми
func (s *Service) GetAll(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("GetAll: fetching all bookings")

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByDate получает бронирования на календарный день (формат YYYY-MM-DD),
// по возрастанию времени начала
func (s *Service) GetByDate(ctx context.Context, date string) (*models.BookingListResponse, error) {
	s.logger.Info("GetByDate: fetching bookings for date=%s", date)

	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		s.logger.Warn("GetByDate: invalid date %q", date)
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByDate(ctx, day)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: fetched %d bookings for date=%s", len(bookings), date)
	return models.FromDomainBookingList(bookings), nil
}

// GetUserBookings получает бронирования пользователя, новые — первыми
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// Delete удаляет бронирование. Удалять можно только свои бронирования —
// политика владения как при обновлении, без обхода для админа.
func (s *Service) Delete(ctx context.Context, id int64, principal *auth.Principal) error {
	s.logger.Info("Delete: deleting booking id=%d by user=%d", id, principal.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !access.CanModifyBooking(principal, booking) {
		s.logger.Warn("Delete: user=%d is not the owner of booking id=%d", principal.UserID, id)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}
