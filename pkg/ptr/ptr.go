package ptr

// Ptr возвращает указатель на переданное значение.
// Удобно для опциональных полей фильтров и запросов.
func Ptr[T any](v T) *T {
	return &v
}
