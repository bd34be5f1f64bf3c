package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64                 // ID пользователя из токена
	CourtID       int64                 // ID корта
	StartTime     time.Time             // Начало бронирования
	DurationHours float64               // Длительность в часах (0.5 - 4.0, кратно 0.5)
	Status        *domain.BookingStatus // Статус (опционально, по умолчанию pending)
	Notes         *string               // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	UserID        int64
	CourtID       int64
	CourtName     string // Название корта (связь, разрешенная при проверке существования)
	StartTime     time.Time
	EndTime       time.Time
	DurationHours float64
	Status        domain.BookingStatus
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toResponse(booking *domain.Booking, court *domain.Court) *Response {
	return &Response{
		ID:            booking.ID,
		UserID:        booking.UserID,
		CourtID:       booking.CourtID,
		CourtName:     court.Name,
		StartTime:     booking.StartTime,
		EndTime:       booking.EndTime,
		DurationHours: booking.DurationHours,
		Status:        booking.Status,
		Notes:         booking.Notes,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}
