package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CreateCourtRequest данные для создания корта
type CreateCourtRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UpdateCourtRequest данные для частичного обновления корта
type UpdateCourtRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CourtResponse корт в ответе API
type CourtResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// CourtListResponse список кортов
type CourtListResponse struct {
	Courts []*CourtResponse `json:"courts"`
	Total  int              `json:"total"`
}

// FromDomainCourt конвертирует доменную модель в ответ API
func FromDomainCourt(c *domain.Court) *CourtResponse {
	return &CourtResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainCourtList конвертирует список доменных моделей в ответ API
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	out := make([]*CourtResponse, 0, len(courts))
	for _, c := range courts {
		out = append(out, FromDomainCourt(c))
	}
	return &CourtListResponse{
		Courts: out,
		Total:  len(out),
	}
}
