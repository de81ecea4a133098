package local

import "errors"

var (
	// ErrItemNotFound возвращается, когда запись с указанным именем отсутствует
	ErrItemNotFound = errors.New("local.storage: item not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("local.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("local.storage: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("local.storage: failed to scan row")
)
