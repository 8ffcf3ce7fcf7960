package availability

import "errors"

var (
	// ErrAvailabilityNotFound возвращается, когда счетчик доступности не найден
	ErrAvailabilityNotFound = errors.New("availability.repository: slot availability not found")

	// ErrSlotFull возвращается, когда условное резервирование не прошло:
	// слот заполнился (или перестал существовать) между чтением и записью.
	// Это штатный бизнес-исход, а не сбой хранилища.
	ErrSlotFull = errors.New("availability.repository: slot has no remaining capacity")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
