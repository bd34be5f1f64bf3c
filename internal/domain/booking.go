package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Valid returns true if the status is one of the known booking statuses
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Booking represents a court reservation in the system
type Booking struct {
	ID            int64
	UserID        int64
	CourtID       int64
	StartTime     time.Time
	EndTime       time.Time // всегда StartTime + DurationHours
	DurationHours float64
	Status        BookingStatus
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking participates in conflict detection.
// Cancelled bookings keep their time slot free for others.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsOwnedBy returns true if the booking belongs to the given user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}
