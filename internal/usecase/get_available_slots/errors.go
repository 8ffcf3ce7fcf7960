package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// (недоступность хранилища и прочие операционные сбои)
	ErrInternal = errors.New("get_available_slots: internal error")
)
