package update_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель запроса на обновление бронирования.
// Nil-поля не изменяются (merge-семантика).
type Request struct {
	ID     int64 // ID бронирования
	UserID int64 // ID пользователя из токена

	CourtID       *int64
	StartTime     *time.Time
	DurationHours *float64
	Status        *domain.BookingStatus
	Notes         *string
}

// touchesInterval сообщает, затрагивает ли патч временной интервал или корт.
// Только в этом случае нужны проверки времени и пересечений.
func (r *Request) touchesInterval() bool {
	return r.StartTime != nil || r.DurationHours != nil || r.CourtID != nil
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID            int64
	UserID        int64
	CourtID       int64
	StartTime     time.Time
	EndTime       time.Time
	DurationHours float64
	Status        domain.BookingStatus
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toResponse(booking *domain.Booking) *Response {
	return &Response{
		ID:            booking.ID,
		UserID:        booking.UserID,
		CourtID:       booking.CourtID,
		StartTime:     booking.StartTime,
		EndTime:       booking.EndTime,
		DurationHours: booking.DurationHours,
		Status:        booking.Status,
		Notes:         booking.Notes,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}
