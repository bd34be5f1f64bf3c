package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBookingService/internal/auth"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		role domain.UserRole
		want bool
	}{
		{"user creates booking", OpCreateBooking, domain.RoleUser, true},
		{"admin creates booking", OpCreateBooking, domain.RoleAdmin, true},
		{"user creates court", OpCreateCourt, domain.RoleUser, false},
		{"admin creates court", OpCreateCourt, domain.RoleAdmin, true},
		{"user updates court", OpUpdateCourt, domain.RoleUser, false},
		{"user deletes court", OpDeleteCourt, domain.RoleUser, false},
		{"user lists courts", OpListCourts, domain.RoleUser, true},
		{"unknown role denied", OpCreateBooking, domain.UserRole("manager"), false},
		{"unlisted operation allows any authenticated", Operation("health:check"), domain.RoleUser, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.op, tt.role))
		})
	}
}

func TestCanModifyBooking(t *testing.T) {
	booking := &domain.Booking{ID: 7, UserID: 10}

	owner := &auth.Principal{UserID: 10, Role: domain.RoleUser}
	stranger := &auth.Principal{UserID: 11, Role: domain.RoleUser}
	admin := &auth.Principal{UserID: 12, Role: domain.RoleAdmin}

	assert.True(t, CanModifyBooking(owner, booking))
	assert.False(t, CanModifyBooking(stranger, booking))
	// Админ не обходит правило владения для бронирований
	assert.False(t, CanModifyBooking(admin, booking))
}

func TestCanModifyUser(t *testing.T) {
	owner := &auth.Principal{UserID: 10, Role: domain.RoleUser}
	stranger := &auth.Principal{UserID: 11, Role: domain.RoleUser}
	admin := &auth.Principal{UserID: 12, Role: domain.RoleAdmin}

	assert.True(t, CanModifyUser(owner, 10))
	assert.False(t, CanModifyUser(stranger, 10))
	// Для учетных записей админ имеет полный доступ
	assert.True(t, CanModifyUser(admin, 10))
}
