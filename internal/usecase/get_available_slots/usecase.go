package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/catalog"
	studioRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/studio"
)

// Options настройки use case
type Options struct {
	// DefaultWindowDays длина периода по умолчанию, если date_to не указан
	DefaultWindowDays int
	// EnforceNoticeWindow скрывает слоты вне окна бронирования пакета (только при фильтре по пакету)
	EnforceNoticeWindow bool
}

// UseCase use case для получения доступных слотов студии
type UseCase struct {
	studioRepo   StudioRepository
	packageRepo  PackageRepository
	slotRepo     SlotRepository
	timeProvider TimeProvider
	logger       Logger
	opts         Options
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	studioRepo StudioRepository,
	packageRepo PackageRepository,
	slotRepo SlotRepository,
	logger Logger,
	opts Options,
) *UseCase {
	if opts.DefaultWindowDays <= 0 {
		opts.DefaultWindowDays = domain.DefaultAvailabilityWindowDays
	}

	return &UseCase{
		studioRepo:   studioRepo,
		packageRepo:  packageRepo,
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		opts:         opts,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов (только чтение)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: studio=%s, package=%v", req.StudioID, req.PackageID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и период
	now := uc.timeProvider.Now()
	today := domain.DateOnly(now.UTC())

	dateFrom, dateTo, err := resolveRange(req, today, uc.opts.DefaultWindowDays)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	// 3. Получаем студию (только активную)
	studio, err := uc.studioRepo.GetActiveByID(ctx, req.StudioID)
	if err != nil {
		if errors.Is(err, studioRepo.ErrStudioNotFound) {
			uc.logger.Warn("GetAvailableSlots: studio id=%s not found", req.StudioID)
			return nil, ErrStudioNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get studio id=%s: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: failed to get studio: %v", ErrInternal, err)
	}

	// 4. Получаем пакет, если задан фильтр
	var pkg *domain.Package
	if req.PackageID != nil {
		pkg, err = uc.packageRepo.GetPublicByStudioAndID(ctx, studio.ID, *req.PackageID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrPackageNotFound) {
				uc.logger.Warn("GetAvailableSlots: package id=%s not found in studio id=%s", *req.PackageID, studio.ID)
				return nil, ErrPackageNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get package id=%s: %v", *req.PackageID, err)
			return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
		}
	}

	response := &Response{
		StudioID:  studio.ID,
		PackageID: req.PackageID,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
	}

	// 5. Получаем слоты за запрошенный период как есть
	slots, err := uc.slotRepo.ListAvailable(ctx, domain.SlotFilter{
		StudioID:  studio.ID,
		PackageID: req.PackageID,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots for studio id=%s: %v", studio.ID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// 6. Окно бронирования пакета (опционально)
	if uc.opts.EnforceNoticeWindow && pkg != nil {
		slots = filterByBookingWindow(slots, pkg, now, loadLocation(studio.Timezone))
	}

	response.Slots = toAvailableSlots(slots, pkg)

	uc.logger.Info("GetAvailableSlots: found %d slots for studio id=%s between %s and %s",
		len(response.Slots), studio.ID, dateFrom.Format(domain.DateFormat), dateTo.Format(domain.DateFormat))

	return response, nil
}
