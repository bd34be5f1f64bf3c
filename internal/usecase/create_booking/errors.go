package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrPastStartTime возвращается при попытке забронировать время в прошлом
	ErrPastStartTime = errors.New("create_booking: cannot book in the past")

	// ErrTimeConflict возвращается, когда интервал пересекается с активным
	// бронированием на том же корте
	ErrTimeConflict = errors.New("create_booking: time conflict with an existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
