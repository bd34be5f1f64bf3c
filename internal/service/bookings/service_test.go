package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/auth"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
)

type stubRepo struct {
	bookings map[int64]*domain.Booking
	deleted  []int64
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if b, ok := s.bookings[id]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (s *stubRepo) GetAll(_ context.Context) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (s *stubRepo) GetByDate(_ context.Context, day time.Time) ([]*domain.Booking, error) {
	end := day.AddDate(0, 0, 1)
	out := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if !b.StartTime.Before(day) && b.StartTime.Before(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(s.bookings, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *stubRepo) {
	day := time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)
	repo := &stubRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, UserID: 5, CourtID: 1, StartTime: day.Add(10 * time.Hour), EndTime: day.Add(11 * time.Hour), DurationHours: 1, Status: domain.StatusConfirmed},
		2: {ID: 2, UserID: 6, CourtID: 1, StartTime: day.AddDate(0, 0, 1), EndTime: day.AddDate(0, 0, 1).Add(time.Hour), DurationHours: 1, Status: domain.StatusPending},
	}}
	return NewService(repo, nopLogger{}), repo
}

func TestGetByID(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)

	_, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByDate(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.GetByDate(context.Background(), "2024-07-20")
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

func TestGetByDate_InvalidFormat(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetByDate(context.Background(), "20.07.2024")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.GetUserBookings(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(5), resp.Bookings[0].UserID)
}

func TestDelete_Owner(t *testing.T) {
	svc, repo := newService()

	owner := &auth.Principal{UserID: 5, Role: domain.RoleUser}
	require.NoError(t, svc.Delete(context.Background(), 1, owner))
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestDelete_NonOwnerForbidden(t *testing.T) {
	svc, repo := newService()

	stranger := &auth.Principal{UserID: 99, Role: domain.RoleUser}
	assert.ErrorIs(t, svc.Delete(context.Background(), 1, stranger), ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}

func TestDelete_AdminDoesNotBypassOwnership(t *testing.T) {
	svc, repo := newService()

	admin := &auth.Principal{UserID: 77, Role: domain.RoleAdmin}
	assert.ErrorIs(t, svc.Delete(context.Background(), 1, admin), ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _ := newService()

	owner := &auth.Principal{UserID: 5, Role: domain.RoleUser}
	assert.ErrorIs(t, svc.Delete(context.Background(), 42, owner), ErrBookingNotFound)
}
