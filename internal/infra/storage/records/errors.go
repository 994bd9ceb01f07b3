package records

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("records.store: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("records.store: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("records.store: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации коллекции
	ErrEncode = errors.New("records.store: failed to encode collection")
)
