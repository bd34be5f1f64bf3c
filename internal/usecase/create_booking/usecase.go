package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
)

// UseCase use case создания бронирования: проверка существования корта,
// валидация интервала и проверка пересечений перед записью
type UseCase struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет создание бронирования.
// Все проверки идут до записи, поэтому откатывать нечего: отказ на любом шаге
// оставляет хранилище нетронутым. Проверка пересечений и запись выполняются
// в сериализуемой транзакции, чтобы две конкурентные брони на один корт
// не прошли проверку одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%d, start=%s, duration=%.1fh",
		req.UserID, req.CourtID, req.StartTime.Format(timeLogFormat), req.DurationHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование корта (до любых проверок времени и пересечений)
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Вычисляем конец интервала и отклоняем прошедшее время
	end := domain.ComputeEnd(req.StartTime, req.DurationHours)
	now := uc.timeProvider.Now()

	if domain.IsPast(req.StartTime, now) {
		uc.logger.Warn("CreateBooking: start time %s is in the past", req.StartTime.Format(timeLogFormat))
		return nil, ErrPastStartTime
	}

	status := domain.StatusPending
	if req.Status != nil {
		status = *req.Status
	}

	var result *domain.Booking

	// 4. Проверка пересечений и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, req.CourtID, req.StartTime, end, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: court=%d has %d conflicting booking(s) in [%s, %s)",
				req.CourtID, len(overlapping), req.StartTime.Format(timeLogFormat), end.Format(timeLogFormat))
			return ErrTimeConflict
		}

		booking := &domain.Booking{
			UserID:        req.UserID,
			CourtID:       req.CourtID,
			StartTime:     req.StartTime,
			EndTime:       end,
			DurationHours: req.DurationHours,
			Status:        status,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return toResponse(result, court), nil
}

const timeLogFormat = "2006-01-02 15:04"
