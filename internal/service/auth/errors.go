package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном email или пароле.
	// Одна и та же ошибка для неизвестного email и неверного пароля,
	// чтобы не раскрывать наличие учетной записи.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
