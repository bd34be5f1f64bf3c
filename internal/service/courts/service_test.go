package courts

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

type stubRepo struct {
	courts map[int64]*domain.Court
	nextID int64
}

func (s *stubRepo) Create(_ context.Context, court *domain.Court) (*domain.Court, error) {
	s.nextID++
	c := *court
	c.ID = s.nextID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	s.courts[c.ID] = &c
	return &c, nil
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	if c, ok := s.courts[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, courtRepo.ErrCourtNotFound
}

func (s *stubRepo) GetAll(_ context.Context) ([]*domain.Court, error) {
	out := make([]*domain.Court, 0, len(s.courts))
	for _, c := range s.courts {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubRepo) Update(_ context.Context, court *domain.Court) (*domain.Court, error) {
	if _, ok := s.courts[court.ID]; !ok {
		return nil, courtRepo.ErrCourtNotFound
	}
	c := *court
	c.UpdatedAt = time.Now()
	s.courts[c.ID] = &c
	return &c, nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.courts[id]; !ok {
		return courtRepo.ErrCourtNotFound
	}
	delete(s.courts, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *stubRepo) {
	repo := &stubRepo{courts: map[int64]*domain.Court{
		1: {ID: 1, Name: "Корт №1", Description: ptr.Ptr("Крытый корт с твердым покрытием")},
	}, nextID: 1}
	return NewService(repo, nopLogger{}), repo
}

func TestCreate(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Create(context.Background(), &models.CreateCourtRequest{
		Name:        "  Корт №2  ",
		Description: ptr.Ptr("Грунтовый"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Корт №2", resp.Name)
	assert.Equal(t, "Грунтовый", *resp.Description)
	assert.Len(t, repo.courts, 2)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newService()

	tests := []struct {
		name string
		req  *models.CreateCourtRequest
	}{
		{
			name: "empty name",
			req:  &models.CreateCourtRequest{Name: "   "},
		},
		{
			name: "name too long",
			req:  &models.CreateCourtRequest{Name: strings.Repeat("a", domain.MaxCourtNameLength+1)},
		},
		{
			name: "description too long",
			req: &models.CreateCourtRequest{
				Name:        "Корт",
				Description: ptr.Ptr(strings.Repeat("a", domain.MaxCourtDescriptionLength+1)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestUpdate_PartialPatch(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.Update(context.Background(), 1, &models.UpdateCourtRequest{
		Name: ptr.Ptr("Корт №1 (обновлен)"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Корт №1 (обновлен)", resp.Name)
	// незатронутое поле сохраняется
	require.NotNil(t, resp.Description)
	assert.Equal(t, "Крытый корт с твердым покрытием", *resp.Description)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Update(context.Background(), 42, &models.UpdateCourtRequest{Name: ptr.Ptr("x")})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestUpdate_InvalidName(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Update(context.Background(), 1, &models.UpdateCourtRequest{Name: ptr.Ptr("  ")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	svc, repo := newService()

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Empty(t, repo.courts)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrCourtNotFound)
}
