package slot

import (
	"errors"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = domain.NewError("slot.repository: slot not found", domain.ErrNotFound)

	// ErrSlotNotAvailable возвращается, когда условное обновление не затронуло ни одной строки:
	// слот заполнен, выключен или уже в прошлом
	ErrSlotNotAvailable = domain.NewError("slot.repository: slot not available", domain.ErrUnavailable)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
