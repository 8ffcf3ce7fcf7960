package slotconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация слотов не найдена
	ErrConfigNotFound = errors.New("slotconfig.repository: slot configuration not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slotconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slotconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slotconfig.repository: failed to scan row")

	// ErrDecodeDocument возвращается при ошибке декодирования JSONB колонок
	ErrDecodeDocument = errors.New("slotconfig.repository: failed to decode document column")
)
