package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/appointment"
	customerRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-StudioBookingService/internal/integrations/notifier"
	"github.com/m04kA/SMC-StudioBookingService/pkg/metrics"
)

const defaultNotifyTimeout = 10 * time.Second

// UseCase use case для отмены бронирования клиентом
type UseCase struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	slotRepo        SlotRepository
	notifier        Notifier
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
	notifyTimeout   time.Duration

	notifyWG sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case
// notifier и metrics могут быть nil
func NewUseCase(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	slotRepo SlotRepository,
	notifier Notifier,
	txManager TransactionManager,
	m Metrics,
	logger Logger,
	notifyTimeout time.Duration,
) *UseCase {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	if m == nil {
		m = (*metrics.Metrics)(nil)
	}

	return &UseCase{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		slotRepo:        slotRepo,
		notifier:        notifier,
		txManager:       txManager,
		metrics:         m,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		notifyTimeout:   notifyTimeout,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute отменяет бронирование и освобождает место в слоте.
// Смена статуса и декремент счетчика слота выполняются в одной транзакции;
// условный UPDATE статуса не дает отменить бронирование дважды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: appointment=%s", req.AppointmentID)

	result, err := uc.execute(ctx, req)
	uc.metrics.IncCancellation(outcome(err))
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: successfully cancelled appointment id=%s", result.Appointment.ID)

	uc.notifyCancelled(ctx, result)

	return result, nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование
	appointment, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("CancelBooking: appointment id=%s not found", req.AppointmentID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to get appointment id=%s: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Проверяем email клиента (без учета регистра)
	customer, err := uc.customerRepo.GetByID(ctx, appointment.CustomerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CancelBooking: customer id=%s of appointment id=%s not found", appointment.CustomerID, appointment.ID)
			return nil, ErrEmailMismatch
		}
		uc.logger.Error("CancelBooking: failed to get customer id=%s: %v", appointment.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	if !customer.MatchesEmail(req.Email) {
		uc.logger.Warn("CancelBooking: email mismatch for appointment id=%s", appointment.ID)
		return nil, ErrEmailMismatch
	}

	// 4. Проверяем статус
	if err := checkCancellable(appointment); err != nil {
		uc.logger.Warn("CancelBooking: appointment id=%s in status %s: %v", appointment.ID, appointment.Status, err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	reason := normalizeReason(req.Reason)

	// 5. Отмена и освобождение места в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 5.1. Условная смена статуса: только из pending/confirmed
		if err := uc.appointmentRepo.Cancel(txCtx, appointment.ID, reason, now); err != nil {
			if errors.Is(err, appointmentRepo.ErrCannotCancel) {
				uc.logger.Warn("CancelBooking: appointment id=%s was cancelled concurrently", appointment.ID)
				return ErrAlreadyCancelled
			}
			uc.logger.Error("CancelBooking: failed to cancel appointment id=%s: %v", appointment.ID, err)
			return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
		}

		// 5.2. Декремент current_bookings с полом 0
		if err := uc.slotRepo.Release(txCtx, appointment.TimeSlotID); err != nil {
			uc.logger.Error("CancelBooking: failed to release slot id=%s: %v", appointment.TimeSlotID, err)
			return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	appointment.Status = domain.StatusCancelled
	appointment.CancelledAt = &now
	appointment.CancellationReason = reason
	appointment.UpdatedAt = now

	result := &Response{
		Appointment: appointment,
		Customer:    customer,
	}

	// Слот нужен только для события, ошибка чтения не влияет на результат
	slot, err := uc.slotRepo.GetByID(ctx, appointment.TimeSlotID)
	if err != nil {
		uc.logger.Warn("CancelBooking: failed to load slot id=%s for event: %v", appointment.TimeSlotID, err)
	} else {
		result.Slot = slot
	}

	return result, nil
}

// notifyCancelled публикует событие после коммита
func (uc *UseCase) notifyCancelled(ctx context.Context, details *Response) {
	if uc.notifier == nil || details.Slot == nil {
		return
	}

	event := notifier.NewBookingCancelled(details, uc.timeProvider.Now())
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.notifyTimeout)

	uc.notifyWG.Add(1)
	go func() {
		defer uc.notifyWG.Done()
		defer cancel()

		if err := uc.notifier.BookingCancelled(notifyCtx, event); err != nil {
			uc.metrics.IncNotificationFailure(notifier.EventBookingCancelled)
			uc.logger.Error("CancelBooking: failed to notify about appointment id=%s: %v", event.AppointmentID, err)
		}
	}()
}

// Wait дожидается завершения отправки уведомлений
func (uc *UseCase) Wait() {
	uc.notifyWG.Wait()
}

func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeCancelled
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrForbidden):
		return metrics.OutcomeForbidden
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrInvalidRequest):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
