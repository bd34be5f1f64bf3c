package update_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	updateBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model. Nil-поля не изменяются.
type UpdateBookingRequest struct {
	CourtID       *int64   `json:"courtId,omitempty"`
	StartTime     *string  `json:"startTime,omitempty"` // RFC3339
	DurationHours *float64 `json:"duration,omitempty"`
	Status        *string  `json:"status,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	CourtID       int64   `json:"courtId"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours float64 `json:"duration"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID, userID int64) (*updateBooking.Request, error) {
	var startTime *time.Time
	if r.StartTime != nil {
		parsed, err := time.Parse(time.RFC3339, *r.StartTime)
		if err != nil {
			return nil, err
		}
		startTime = &parsed
	}

	var status *domain.BookingStatus
	if r.Status != nil {
		s := domain.BookingStatus(*r.Status)
		status = &s
	}

	return &updateBooking.Request{
		ID:            bookingID,
		UserID:        userID,
		CourtID:       r.CourtID,
		StartTime:     startTime,
		DurationHours: r.DurationHours,
		Status:        status,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		CourtID:       resp.CourtID,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		EndTime:       resp.EndTime.Format(time.RFC3339),
		DurationHours: resp.DurationHours,
		Status:        string(resp.Status),
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
