package book_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrSlotNotAvailable возвращается, когда вместимость слота закончилась
	// между выбором и бронированием. Штатный исход - клиенту предлагается
	// выбрать слот заново.
	ErrSlotNotAvailable = errors.New("book_slot: slot is no longer available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
