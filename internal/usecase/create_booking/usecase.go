package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/catalog"
	slotRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/slot"
	studioRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/studio"
	"github.com/m04kA/SMC-StudioBookingService/internal/integrations/notifier"
	"github.com/m04kA/SMC-StudioBookingService/pkg/metrics"
	"github.com/m04kA/SMC-StudioBookingService/pkg/ptr"
)

const defaultNotifyTimeout = 10 * time.Second

// Options настройки use case
type Options struct {
	// EnforceNoticeWindow включает проверку min_booking_notice_hours и max_booking_days_ahead пакета
	EnforceNoticeWindow bool
	// NotifyTimeout таймаут публикации события после коммита
	NotifyTimeout time.Duration
}

// UseCase use case для создания бронирования
type UseCase struct {
	packageRepo     PackageRepository
	slotRepo        SlotRepository
	studioRepo      StudioRepository
	customerRepo    CustomerRepository
	appointmentRepo AppointmentRepository
	notifier        Notifier
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
	opts            Options

	notifyWG sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case
// notifier и metrics могут быть nil
func NewUseCase(
	packageRepo PackageRepository,
	slotRepo SlotRepository,
	studioRepo StudioRepository,
	customerRepo CustomerRepository,
	appointmentRepo AppointmentRepository,
	notifier Notifier,
	txManager TransactionManager,
	m Metrics,
	logger Logger,
	opts Options,
) *UseCase {
	if opts.NotifyTimeout <= 0 {
		opts.NotifyTimeout = defaultNotifyTimeout
	}
	if m == nil {
		m = (*metrics.Metrics)(nil)
	}

	return &UseCase{
		packageRepo:     packageRepo,
		slotRepo:        slotRepo,
		studioRepo:      studioRepo,
		customerRepo:    customerRepo,
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		txManager:       txManager,
		metrics:         m,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		opts:            opts,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
// Проверки выполняются до транзакции, а занятие места в слоте делается одним
// условным UPDATE внутри транзакции. Параллельные запросы на последнее место
// получают ErrSlotNotAvailable, а не ошибку сериализации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: package=%s, slot=%s, email=%s",
		req.PackageID, req.TimeSlotID, domain.NormalizeEmail(req.Customer.Email))

	result, err := uc.execute(ctx, req)
	uc.metrics.IncBooking(outcome(err))
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%s, status=%s",
		result.Appointment.ID, result.Appointment.Status)

	uc.notifyCreated(ctx, result)

	return result, nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	today := domain.DateOnly(now.UTC())

	// 3. Получаем пакет (только активный и публичный)
	pkg, err := uc.packageRepo.GetPublicByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPackageNotFound) {
			uc.logger.Warn("CreateBooking: package id=%s not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("CreateBooking: failed to get package id=%s: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	// 4. Получаем слот и проверяем доступность
	slot, err := uc.slotRepo.GetByID(ctx, req.TimeSlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CreateBooking: slot id=%s not found", req.TimeSlotID)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to get slot id=%s: %v", req.TimeSlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	if err := validateSlot(slot, pkg, today); err != nil {
		uc.logger.Warn("CreateBooking: slot id=%s rejected: %v", slot.ID, err)
		return nil, err
	}

	// 5. Длительность сессии
	duration, err := pkg.ResolveDuration(req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: duration rejected for package id=%s: %v", pkg.ID, err)
		return nil, err
	}

	// 6. Окно бронирования пакета (опционально)
	if uc.opts.EnforceNoticeWindow {
		if err := uc.checkBookingWindow(ctx, slot, pkg, now); err != nil {
			return nil, err
		}
	}

	// 7. Цена: цена слота, иначе базовая цена пакета. Оборудование пока бесплатно
	basePrice := slot.ResolvePrice(pkg)
	equipmentCost := 0.0

	var result *Response

	// 8. Клиент, резервирование места и бронирование в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 8.1. Находим или создаем клиента по email
		customer, err := uc.customerRepo.GetOrCreate(txCtx, &domain.Customer{
			Email:     domain.NormalizeEmail(req.Customer.Email),
			FirstName: strings.TrimSpace(req.Customer.FirstName),
			LastName:  strings.TrimSpace(req.Customer.LastName),
			Phone:     req.Customer.Phone,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get or create customer: %v", err)
			return fmt.Errorf("%w: failed to get or create customer: %v", ErrInternal, err)
		}

		// 8.2. Атомарно занимаем место: проверка вместимости и инкремент одним UPDATE
		if err := uc.slotRepo.Reserve(txCtx, slot.ID, today); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: slot id=%s was taken concurrently", slot.ID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to reserve slot id=%s: %v", slot.ID, err)
			return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
		}

		// 8.3. Создаем бронирование
		status := domain.InitialStatus(pkg)
		appointment := &domain.Appointment{
			ID:                  uuid.New(),
			StudioID:            pkg.StudioID,
			CustomerID:          customer.ID,
			TimeSlotID:          slot.ID,
			PackageID:           pkg.ID,
			SessionType:         pkg.SessionType,
			DurationMins:        duration,
			BasePrice:           basePrice,
			EquipmentCost:       equipmentCost,
			TotalPrice:          basePrice + equipmentCost,
			Status:              status,
			EquipmentRequested:  req.EquipmentRequested,
			SpecialRequirements: req.SpecialRequirements,
			CustomFormResponses: req.CustomFormResponses,
		}
		if status == domain.StatusConfirmed {
			appointment.ConfirmedAt = ptr.Ptr(now)
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		reserved := *slot
		reserved.CurrentBookings++

		result = &Response{
			Appointment: created,
			Customer:    customer,
			Package:     pkg,
			Slot:        &reserved,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// checkBookingWindow проверяет окно бронирования в часовом поясе студии
func (uc *UseCase) checkBookingWindow(ctx context.Context, slot *domain.Slot, pkg *domain.Package, now time.Time) error {
	studio, err := uc.studioRepo.GetActiveByID(ctx, pkg.StudioID)
	if err != nil {
		if errors.Is(err, studioRepo.ErrStudioNotFound) {
			uc.logger.Warn("CreateBooking: studio id=%s not found", pkg.StudioID)
			return ErrPackageNotFound
		}
		uc.logger.Error("CreateBooking: failed to get studio id=%s: %v", pkg.StudioID, err)
		return fmt.Errorf("%w: failed to get studio: %v", ErrInternal, err)
	}

	if err := validateBookingWindow(slot, pkg, now, loadLocation(studio.Timezone)); err != nil {
		uc.logger.Warn("CreateBooking: booking window check failed: %v", err)
		return err
	}
	return nil
}

// notifyCreated публикует событие после коммита. Ошибка публикации не отменяет бронирование
func (uc *UseCase) notifyCreated(ctx context.Context, details *Response) {
	if uc.notifier == nil {
		return
	}

	event := notifier.NewBookingCreated(details, uc.timeProvider.Now())
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.opts.NotifyTimeout)

	uc.notifyWG.Add(1)
	go func() {
		defer uc.notifyWG.Done()
		defer cancel()

		if err := uc.notifier.BookingCreated(notifyCtx, event); err != nil {
			uc.metrics.IncNotificationFailure(notifier.EventBookingCreated)
			uc.logger.Error("CreateBooking: failed to notify about appointment id=%s: %v", event.AppointmentID, err)
		}
	}()
}

// Wait дожидается завершения отправки уведомлений (graceful shutdown и тесты)
func (uc *UseCase) Wait() {
	uc.notifyWG.Wait()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeCreated
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrUnavailable):
		return metrics.OutcomeUnavailable
	case errors.Is(err, domain.ErrConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, domain.ErrInvalidRequest):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
