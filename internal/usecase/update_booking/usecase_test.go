package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

type stubBookingRepo struct {
	bookings map[int64]*domain.Booking
	updated  *domain.Booking
}

func (s *stubBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if b, ok := s.bookings[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (s *stubBookingRepo) GetOverlapping(_ context.Context, courtID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.CourtID != courtID || !b.IsActive() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if domain.Overlaps(b.StartTime, b.EndTime, start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBookingRepo) Update(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if _, ok := s.bookings[b.ID]; !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b.UpdatedAt = time.Now()
	s.bookings[b.ID] = b
	s.updated = b
	return b, nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Фикстура: две брони пользователя 5 на корте 1 — [10:00, 11:00) и [13:00, 14:00)
func newFixture(t *testing.T) (*UseCase, *stubBookingRepo, time.Time) {
	t.Helper()

	day := time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)
	now := day.Add(8 * time.Hour)

	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
		1: {
			ID: 1, UserID: 5, CourtID: 1,
			StartTime: day.Add(10 * time.Hour), EndTime: day.Add(11 * time.Hour),
			DurationHours: 1.0, Status: domain.StatusConfirmed,
		},
		2: {
			ID: 2, UserID: 5, CourtID: 1,
			StartTime: day.Add(13 * time.Hour), EndTime: day.Add(14 * time.Hour),
			DurationHours: 1.0, Status: domain.StatusConfirmed,
		},
	}}

	uc := NewUseCase(repo, stubTxManager{}, nopLogger{}).
		WithTimeProvider(fixedTime{now: now})

	return uc, repo, day
}

func TestExecute_NotFound(t *testing.T) {
	uc, _, _ := newFixture(t)

	_, err := uc.Execute(context.Background(), &Request{ID: 999, UserID: 5})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_ForbiddenForNonOwner(t *testing.T) {
	uc, repo, day := newFixture(t)

	// Интервал без конфликтов, но пользователь не владелец
	req := &Request{
		ID:        1,
		UserID:    99,
		StartTime: ptr.Ptr(day.Add(16 * time.Hour)),
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.updated)
}

func TestExecute_SelfExclusionFromOverlapCheck(t *testing.T) {
	uc, _, day := newFixture(t)

	// Перенос брони в её же интервал: сама с собой не конфликтует
	req := &Request{
		ID:            1,
		UserID:        5,
		StartTime:     ptr.Ptr(day.Add(10 * time.Hour)),
		DurationHours: ptr.Ptr(1.0),
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.StartTime.Equal(day.Add(10*time.Hour)))
	assert.True(t, resp.EndTime.Equal(day.Add(11*time.Hour)))
}

func TestExecute_ConflictWithAnotherBooking(t *testing.T) {
	uc, _, day := newFixture(t)

	// Перенос первой брони на [13:30, 14:30) — пересекается со второй
	req := &Request{
		ID:        1,
		UserID:    5,
		StartTime: ptr.Ptr(day.Add(13*time.Hour + 30*time.Minute)),
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestExecute_PastStartTime(t *testing.T) {
	uc, _, day := newFixture(t)

	req := &Request{
		ID:        1,
		UserID:    5,
		StartTime: ptr.Ptr(day.Add(7 * time.Hour)), // 07:00, "сейчас" 08:00
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastStartTime)
}

func TestExecute_MergeSemantics(t *testing.T) {
	uc, repo, day := newFixture(t)

	// Меняется только длительность: начало и корт берутся из текущей брони
	req := &Request{
		ID:            1,
		UserID:        5,
		DurationHours: ptr.Ptr(2.0),
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.StartTime.Equal(day.Add(10*time.Hour)), "start unchanged")
	assert.True(t, resp.EndTime.Equal(day.Add(12*time.Hour)), "end recomputed from patched duration")
	assert.Equal(t, 2.0, resp.DurationHours)
	assert.Equal(t, int64(1), repo.updated.CourtID, "court unchanged")
}

func TestExecute_StatusOnlyPatchSkipsIntervalChecks(t *testing.T) {
	uc, repo, day := newFixture(t)

	// Бронь уже началась бы в прошлом при переносе, но патч статуса
	// не трогает интервал и не должен проверять время
	repo.bookings[1].StartTime = day.Add(7 * time.Hour)
	repo.bookings[1].EndTime = day.Add(8 * time.Hour)

	req := &Request{
		ID:     1,
		UserID: 5,
		Status: ptr.Ptr(domain.StatusCancelled),
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, resp.Status)
}

func TestExecute_InvalidPatchedDuration(t *testing.T) {
	uc, _, _ := newFixture(t)

	req := &Request{
		ID:            1,
		UserID:        5,
		DurationHours: ptr.Ptr(5.0),
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MoveToFreedCancelledSlot(t *testing.T) {
	uc, repo, day := newFixture(t)

	// Вторая бронь отменена — её интервал свободен
	repo.bookings[2].Status = domain.StatusCancelled

	req := &Request{
		ID:        1,
		UserID:    5,
		StartTime: ptr.Ptr(day.Add(13 * time.Hour)),
	}

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}
