package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-CourtBookingService/internal/auth"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/users/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

type stubRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func (s *stubRepo) emailTaken(email string, excludeID int64) bool {
	for _, u := range s.users {
		if u.Email == email && u.ID != excludeID {
			return true
		}
	}
	return false
}

func (s *stubRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if s.emailTaken(user.Email, 0) {
		return nil, userRepo.ErrEmailTaken
	}
	s.nextID++
	u := *user
	u.ID = s.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = &u
	return &u, nil
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, userRepo.ErrUserNotFound
}

func (s *stubRepo) GetAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := s.users[user.ID]; !ok {
		return nil, userRepo.ErrUserNotFound
	}
	if s.emailTaken(user.Email, user.ID) {
		return nil, userRepo.ErrEmailTaken
	}
	u := *user
	u.UpdatedAt = time.Now()
	s.users[u.ID] = &u
	return &u, nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.users[id]; !ok {
		return userRepo.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *stubRepo) {
	hash, _ := auth.HashPassword("secret123")
	repo := &stubRepo{users: map[int64]*domain.User{
		1: {ID: 1, Name: "Иван", Email: "ivan@example.com", PasswordHash: hash, Role: domain.RoleUser},
	}, nextID: 1}
	return NewService(repo, nopLogger{}), repo
}

func TestRegister(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Register(context.Background(), &models.RegisterUserRequest{
		Name:     "Мария",
		Email:    "  Maria@Example.COM ",
		Phone:    ptr.Ptr("+7 900 123-45-67"),
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", resp.Email)
	assert.Equal(t, "user", resp.Role)

	stored := repo.users[resp.ID]
	require.NotNil(t, stored)
	// пароль хранится только в виде bcrypt-хеша
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestRegister_AdminRole(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.Register(context.Background(), &models.RegisterUserRequest{
		Name:     "Админ",
		Email:    "admin@example.com",
		Password: "secret123",
		Role:     ptr.Ptr("admin"),
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Role)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newService()

	tests := []struct {
		name string
		req  *models.RegisterUserRequest
	}{
		{"empty name", &models.RegisterUserRequest{Email: "a@b.com", Password: "secret123"}},
		{"invalid email", &models.RegisterUserRequest{Name: "x", Email: "not-an-email", Password: "secret123"}},
		{"short password", &models.RegisterUserRequest{Name: "x", Email: "a@b.com", Password: "12345"}},
		{"unknown role", &models.RegisterUserRequest{Name: "x", Email: "a@b.com", Password: "secret123", Role: ptr.Ptr("superuser")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Register(context.Background(), &models.RegisterUserRequest{
		Name:     "Двойник",
		Email:    "IVAN@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetByID_HidesPasswordHash(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "ivan@example.com", resp.Email)
}

func TestUpdate_Owner(t *testing.T) {
	svc, _ := newService()

	owner := &auth.Principal{UserID: 1, Role: domain.RoleUser}
	resp, err := svc.Update(context.Background(), 1, &models.UpdateUserRequest{
		Name: ptr.Ptr("Иван Петров"),
	}, owner)
	require.NoError(t, err)
	assert.Equal(t, "Иван Петров", resp.Name)
}

func TestUpdate_AdminCanModifyOthers(t *testing.T) {
	svc, _ := newService()

	admin := &auth.Principal{UserID: 99, Role: domain.RoleAdmin}
	_, err := svc.Update(context.Background(), 1, &models.UpdateUserRequest{
		Phone: ptr.Ptr("+7 495 000-00-00"),
	}, admin)
	assert.NoError(t, err)
}

func TestUpdate_NonOwnerForbidden(t *testing.T) {
	svc, _ := newService()

	stranger := &auth.Principal{UserID: 2, Role: domain.RoleUser}
	_, err := svc.Update(context.Background(), 1, &models.UpdateUserRequest{
		Name: ptr.Ptr("x"),
	}, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_PasswordRehashed(t *testing.T) {
	svc, repo := newService()
	oldHash := repo.users[1].PasswordHash

	owner := &auth.Principal{UserID: 1, Role: domain.RoleUser}
	_, err := svc.Update(context.Background(), 1, &models.UpdateUserRequest{
		Password: ptr.Ptr("newsecret"),
	}, owner)
	require.NoError(t, err)

	newHash := repo.users[1].PasswordHash
	assert.NotEqual(t, oldHash, newHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("newsecret")))
}

func TestUpdate_ShortPassword(t *testing.T) {
	svc, _ := newService()

	owner := &auth.Principal{UserID: 1, Role: domain.RoleUser}
	_, err := svc.Update(context.Background(), 1, &models.UpdateUserRequest{
		Password: ptr.Ptr("123"),
	}, owner)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	svc, repo := newService()

	stranger := &auth.Principal{UserID: 2, Role: domain.RoleUser}
	assert.ErrorIs(t, svc.Delete(context.Background(), 1, stranger), ErrAccessDenied)

	admin := &auth.Principal{UserID: 99, Role: domain.RoleAdmin}
	require.NoError(t, svc.Delete(context.Background(), 1, admin))
	assert.Empty(t, repo.users)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1, admin), ErrUserNotFound)
}
