package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// RegisterUserRequest данные для регистрации пользователя
type RegisterUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password"`
	Role     *string `json:"role,omitempty"`
}

// UpdateUserRequest данные для частичного обновления пользователя
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UserResponse пользователь в ответе API. Хеш пароля наружу не отдается.
type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// UserListResponse список пользователей
type UserListResponse struct {
	Users []*UserResponse `json:"users"`
	Total int             `json:"total"`
}

// FromDomainUser конвертирует доменную модель в ответ API
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainUserList конвертирует список доменных моделей в ответ API
func FromDomainUserList(users []*domain.User) *UserListResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromDomainUser(u))
	}
	return &UserListResponse{
		Users: out,
		Total: len(out),
	}
}
