package catalog

import (
	"errors"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

var (
	// ErrStudioNotFound возвращается, когда студия не найдена или неактивна
	ErrStudioNotFound = domain.NewError("catalog.service: studio not found", domain.ErrNotFound)

	// ErrPackageNotFound возвращается, когда пакет не найден, неактивен или не публичный
	ErrPackageNotFound = domain.NewError("catalog.service: package not found", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)
