package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь пытается изменить чужое
	// бронирование. Правило действует для всех ролей, включая админа.
	ErrAccessDenied = errors.New("update_booking: can only modify own bookings")

	// ErrPastStartTime возвращается при попытке перенести бронирование в прошлое
	ErrPastStartTime = errors.New("update_booking: cannot move booking to the past")

	// ErrTimeConflict возвращается, когда новый интервал пересекается с активным
	// бронированием на том же корте
	ErrTimeConflict = errors.New("update_booking: time conflict with an existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
