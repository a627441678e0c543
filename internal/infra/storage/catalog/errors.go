package catalog

import (
	"errors"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

var (
	// ErrPackageNotFound возвращается, когда пакет не найден или недоступен для публичного бронирования
	ErrPackageNotFound = domain.NewError("catalog.repository: package not found", domain.ErrNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
