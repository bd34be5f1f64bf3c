package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

// Стабы зависимостей

type stubBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (s *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.nextID++
	b.ID = s.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	s.created = b
	return b, nil
}

func (s *stubBookingRepo) GetOverlapping(_ context.Context, courtID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range s.existing {
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

type stubCourtRepo struct {
	courts map[int64]*domain.Court
}

func (s *stubCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	if c, ok := s.courts[id]; ok {
		return c, nil
	}
	return nil, courtRepo.ErrCourtNotFound
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

// Фикстура: корт 1 существует, на 2024-07-20 есть подтвержденная бронь [10:00, 11:00)
func newFixture(t *testing.T) (*UseCase, *stubBookingRepo, time.Time) {
	t.Helper()

	day := time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)
	now := day.Add(8 * time.Hour) // "сейчас" — 08:00 того же дня

	bookings := &stubBookingRepo{
		nextID: 100,
		existing: []*domain.Booking{
			{
				ID:            1,
				UserID:        5,
				CourtID:       1,
				StartTime:     day.Add(10 * time.Hour),
				EndTime:       day.Add(11 * time.Hour),
				DurationHours: 1.0,
				Status:        domain.StatusConfirmed,
			},
		},
	}
	courts := &stubCourtRepo{courts: map[int64]*domain.Court{
		1: {ID: 1, Name: "Квадра 1"},
	}}

	uc := NewUseCase(bookings, courts, stubTxManager{}, nopLogger{}).
		WithTimeProvider(fixedTime{now: now})

	return uc, bookings, day
}

func validRequest(day time.Time) *Request {
	return &Request{
		UserID:        7,
		CourtID:       1,
		StartTime:     day.Add(14 * time.Hour),
		DurationHours: 1.0,
	}
}

func TestExecute_Success(t *testing.T) {
	uc, repo, day := newFixture(t)

	resp, err := uc.Execute(context.Background(), validRequest(day))
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, int64(1), resp.CourtID)
	assert.Equal(t, "Квадра 1", resp.CourtName)
	assert.Equal(t, domain.StatusPending, resp.Status, "status defaults to pending")
	assert.True(t, resp.EndTime.Equal(day.Add(15*time.Hour)), "end = start + duration")
	require.NotNil(t, repo.created)
}

func TestExecute_ExplicitStatus(t *testing.T) {
	uc, _, day := newFixture(t)

	req := validRequest(day)
	req.Status = ptr.Ptr(domain.StatusConfirmed)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
}

func TestExecute_CourtNotFound(t *testing.T) {
	uc, repo, day := newFixture(t)

	req := validRequest(day)
	req.CourtID = 999
	// Интервал пересекается с существующей бронью, но проверка корта идет раньше
	req.StartTime = day.Add(10 * time.Hour)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCourtNotFound)
	assert.Nil(t, repo.created)
}

func TestExecute_PastStartTime(t *testing.T) {
	uc, repo, day := newFixture(t)

	req := validRequest(day)
	req.StartTime = day.Add(7 * time.Hour) // 07:00, "сейчас" 08:00

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastStartTime)
	assert.Nil(t, repo.created)
}

func TestExecute_InvalidDuration(t *testing.T) {
	uc, repo, day := newFixture(t)

	for _, hours := range []float64{0, 0.25, 4.5, 1.3, -1} {
		req := validRequest(day)
		req.DurationHours = hours

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput, "duration %v must be rejected", hours)
	}
	assert.Nil(t, repo.created)
}

func TestExecute_Conflicts(t *testing.T) {
	// Существующая бронь: корт 1, [10:00, 11:00)
	tests := []struct {
		name     string
		startH   float64
		conflict bool
	}{
		{"overlapping [10:30, 11:30)", 10.5, true},
		{"identical [10:00, 11:00)", 10, true},
		{"touching after [11:00, 12:00)", 11, false},
		{"touching before [09:00, 10:00)", 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, day := newFixture(t)

			req := validRequest(day)
			req.StartTime = day.Add(time.Duration(tt.startH * float64(time.Hour)))

			_, err := uc.Execute(context.Background(), req)
			if tt.conflict {
				assert.ErrorIs(t, err, ErrTimeConflict)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecute_CancelledBookingDoesNotConflict(t *testing.T) {
	uc, repo, day := newFixture(t)
	repo.existing[0].Status = domain.StatusCancelled

	req := validRequest(day)
	req.StartTime = day.Add(10 * time.Hour) // тот же интервал, что у отмененной брони

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_DifferentCourtDoesNotConflict(t *testing.T) {
	uc, _, day := newFixture(t)

	// Корт 2 свободен, хотя интервал совпадает с бронью на корте 1
	ucCourts := &stubCourtRepo{courts: map[int64]*domain.Court{2: {ID: 2, Name: "Квадра 2"}}}
	uc.courtRepo = ucCourts

	req := validRequest(day)
	req.CourtID = 2
	req.StartTime = day.Add(10 * time.Hour)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_NotesTooLong(t *testing.T) {
	uc, _, day := newFixture(t)

	long := make([]rune, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'а'
	}

	req := validRequest(day)
	req.Notes = ptr.Ptr(string(long))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
