package models

import usermodels "github.com/m04kA/SMC-CourtBookingService/internal/service/users/models"

// LoginRequest данные для входа
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse JWT и профиль вошедшего пользователя
type LoginResponse struct {
	AccessToken string                   `json:"accessToken"`
	User        *usermodels.UserResponse `json:"user"`
}
