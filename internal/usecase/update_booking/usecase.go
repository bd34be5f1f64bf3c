package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
)

// UseCase use case обновления бронирования: проверка владения, перевалидация
// интервала при изменении времени и проверка пересечений без учета самой брони
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
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

// Execute выполняет обновление бронирования.
// Nil-поля запроса не меняются. Если патч затрагивает время или корт,
// интервал пересчитывается из связки "патч или текущее значение" и проверяется
// на пересечения с исключением собственного ID — бронь не конфликтует сама с собой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d, user=%d", req.ID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", req.ID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Проверка владения: изменять бронирование может только владелец
	if !booking.IsOwnedBy(req.UserID) {
		uc.logger.Warn("UpdateBooking: user=%d is not the owner of booking id=%d", req.UserID, req.ID)
		return nil, ErrAccessDenied
	}

	var result *domain.Booking

	if req.touchesInterval() {
		// 4а. Пересчитываем интервал: значение из патча или существующее
		newStart := booking.StartTime
		if req.StartTime != nil {
			newStart = *req.StartTime
		}
		newDuration := booking.DurationHours
		if req.DurationHours != nil {
			newDuration = *req.DurationHours
		}
		newCourtID := booking.CourtID
		if req.CourtID != nil {
			newCourtID = *req.CourtID
		}
		newEnd := domain.ComputeEnd(newStart, newDuration)

		if domain.IsPast(newStart, uc.timeProvider.Now()) {
			uc.logger.Warn("UpdateBooking: new start time %s is in the past", newStart.Format(timeLogFormat))
			return nil, ErrPastStartTime
		}

		// Проверка пересечений и запись в сериализуемой транзакции,
		// собственная бронь исключается из сравнения
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, newCourtID, newStart, newEnd, &booking.ID)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to check overlaps: %v", err)
				return fmt.Errorf("%w: failed to check overlaps: %v", ErrInternal, err)
			}

			if len(overlapping) > 0 {
				uc.logger.Warn("UpdateBooking: court=%d has %d conflicting booking(s) in [%s, %s)",
					newCourtID, len(overlapping), newStart.Format(timeLogFormat), newEnd.Format(timeLogFormat))
				return ErrTimeConflict
			}

			booking.CourtID = newCourtID
			booking.StartTime = newStart
			booking.EndTime = newEnd
			booking.DurationHours = newDuration
			applyPatch(booking, req)

			updated, err := uc.bookingRepo.Update(txCtx, booking)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.ID, err)
				return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
			}

			result = updated
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		// 4б. Патч не затрагивает интервал: обычное обновление без транзакции
		applyPatch(booking, req)

		result, err = uc.bookingRepo.Update(ctx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return nil, ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.ID, err)
			return nil, fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)

	return toResponse(result), nil
}

// applyPatch применяет поля, не связанные с интервалом
func applyPatch(booking *domain.Booking, req *Request) {
	if req.Status != nil {
		booking.Status = *req.Status
	}
	if req.Notes != nil {
		booking.Notes = req.Notes
	}
}

const timeLogFormat = "2006-01-02 15:04"
