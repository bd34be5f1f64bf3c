package access

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/auth"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Operation именованная операция API, к которой привязаны требования по ролям
type Operation string

const (
	OpCreateBooking Operation = "booking:create"
	OpGetBooking    Operation = "booking:get"
	OpListBookings  Operation = "booking:list"
	OpMyBookings    Operation = "booking:list_own"
	OpUpdateBooking Operation = "booking:update"
	OpDeleteBooking Operation = "booking:delete"

	OpCreateCourt Operation = "court:create"
	OpGetCourt    Operation = "court:get"
	OpListCourts  Operation = "court:list"
	OpUpdateCourt Operation = "court:update"
	OpDeleteCourt Operation = "court:delete"

	OpGetUser    Operation = "user:get"
	OpListUsers  Operation = "user:list"
	OpUpdateUser Operation = "user:update"
	OpDeleteUser Operation = "user:delete"
)

// rolesByOperation таблица операция -> допустимые роли.
// Пустого списка нет: операции без записи требуют только аутентификации.
// Проверка владения (свои бронирования, свой профиль) живет в сервисах,
// здесь только ролевой барьер.
var rolesByOperation = map[Operation][]domain.UserRole{
	OpCreateBooking: {domain.RoleAdmin, domain.RoleUser},
	OpGetBooking:    {domain.RoleAdmin, domain.RoleUser},
	OpListBookings:  {domain.RoleAdmin, domain.RoleUser},
	OpMyBookings:    {domain.RoleAdmin, domain.RoleUser},
	OpUpdateBooking: {domain.RoleAdmin, domain.RoleUser},
	OpDeleteBooking: {domain.RoleAdmin, domain.RoleUser},

	OpCreateCourt: {domain.RoleAdmin},
	OpGetCourt:    {domain.RoleAdmin, domain.RoleUser},
	OpListCourts:  {domain.RoleAdmin, domain.RoleUser},
	OpUpdateCourt: {domain.RoleAdmin},
	OpDeleteCourt: {domain.RoleAdmin},

	OpGetUser:    {domain.RoleAdmin, domain.RoleUser},
	OpListUsers:  {domain.RoleAdmin, domain.RoleUser},
	OpUpdateUser: {domain.RoleAdmin, domain.RoleUser},
	OpDeleteUser: {domain.RoleAdmin, domain.RoleUser},
}

// Allowed проверяет, что роль допущена к операции.
// Операция без записи в таблице доступна любому аутентифицированному пользователю.
func Allowed(op Operation, role domain.UserRole) bool {
	required, ok := rolesByOperation[op]
	if !ok {
		return true
	}
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}

// CanModifyBooking проверяет право изменять/удалять бронирование.
// Только владелец: админ НЕ обходит это правило (в отличие от пользователей).
func CanModifyBooking(p *auth.Principal, booking *domain.Booking) bool {
	return booking.IsOwnedBy(p.UserID)
}

// CanModifyUser проверяет право изменять/удалять учетную запись.
// Владелец или админ.
func CanModifyUser(p *auth.Principal, userID int64) bool {
	return p.UserID == userID || p.Role == domain.RoleAdmin
}
