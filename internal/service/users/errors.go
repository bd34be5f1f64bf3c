package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken возвращается при попытке занять уже зарегистрированный email
	ErrEmailTaken = errors.New("email already registered")

	// ErrAccessDenied возвращается, когда пользователь пытается изменить чужой
	// профиль. Администратору разрешено управлять любыми профилями.
	ErrAccessDenied = errors.New("can only modify own profile")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users service: internal error")
)
