package notifier

import (
	"context"
	"errors"
	"fmt"
)

// ErrPublish возвращается, если транспорт не принял событие
var ErrPublish = errors.New("notifier: failed to publish event")

// Publisher транспорт событий (asynq, RabbitMQ или лог)
type Publisher interface {
	Publish(ctx context.Context, event string, payload interface{}) error
	Close() error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier передает события бронирования сервису уведомлений.
// Рендеринг и доставка писем происходят на стороне потребителя
type Notifier struct {
	publisher Publisher
	logger    Logger
}

func New(publisher Publisher, logger Logger) *Notifier {
	return &Notifier{publisher: publisher, logger: logger}
}

// BookingCreated публикует событие booking.created
func (n *Notifier) BookingCreated(ctx context.Context, event BookingCreated) error {
	if err := n.publisher.Publish(ctx, EventBookingCreated, event); err != nil {
		return fmt.Errorf("%w: %s appointment=%s: %v", ErrPublish, EventBookingCreated, event.AppointmentID, err)
	}
	n.logger.Info("Notifier: %s published for appointment=%s", EventBookingCreated, event.AppointmentID)
	return nil
}

// BookingCancelled публикует событие booking.cancelled
func (n *Notifier) BookingCancelled(ctx context.Context, event BookingCancelled) error {
	if err := n.publisher.Publish(ctx, EventBookingCancelled, event); err != nil {
		return fmt.Errorf("%w: %s appointment=%s: %v", ErrPublish, EventBookingCancelled, event.AppointmentID, err)
	}
	n.logger.Info("Notifier: %s published for appointment=%s", EventBookingCancelled, event.AppointmentID)
	return nil
}

// Close закрывает транспорт
func (n *Notifier) Close() error {
	return n.publisher.Close()
}
