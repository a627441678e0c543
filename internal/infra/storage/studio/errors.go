package studio

import (
	"errors"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

var (
	// ErrStudioNotFound возвращается, когда студия не найдена или неактивна
	ErrStudioNotFound = domain.NewError("studio.repository: studio not found", domain.ErrNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("studio.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("studio.repository: failed to scan row")
)
