package update_booking

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: booking ID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID != nil && *req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.StartTime != nil && req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime must not be zero", ErrInvalidInput)
	}

	if req.DurationHours != nil && !domain.ValidDuration(*req.DurationHours) {
		return fmt.Errorf("%w: duration must be between %.1f and %.1f hours in half-hour steps",
			ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
	}

	if req.Status != nil && !req.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
