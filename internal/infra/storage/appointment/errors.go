package appointment

import (
	"errors"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда бронирование не найдено
	ErrAppointmentNotFound = domain.NewError("appointment.repository: appointment not found", domain.ErrNotFound)

	// ErrCannotCancel возвращается, когда условная отмена не затронула строку:
	// бронирование уже отменено, завершено или не существует
	ErrCannotCancel = domain.NewError("appointment.repository: appointment cannot be cancelled", domain.ErrInvalidState)

	// ErrReferenceNotFound возвращается при нарушении внешнего ключа (слот, пакет, клиент или студия удалены)
	ErrReferenceNotFound = domain.NewError("appointment.repository: referenced entity not found", domain.ErrNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
