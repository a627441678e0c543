package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/appointment"
	customerRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-StudioBookingService/internal/service/bookings/models"
)

// Service сервис просмотра бронирований клиентом
type Service struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	packageRepo     PackageRepository
	slotRepo        SlotRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	packageRepo PackageRepository,
	slotRepo SlotRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		packageRepo:     packageRepo,
		slotRepo:        slotRepo,
		logger:          logger,
	}
}

// GetForCustomer получает бронирование по ID вместе с клиентом, пакетом и слотом.
// Доступ только по email клиента (без учета регистра)
func (s *Service) GetForCustomer(ctx context.Context, id uuid.UUID, email string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetForCustomer: fetching appointment id=%s", id)

	if strings.TrimSpace(email) == "" {
		s.logger.Warn("GetForCustomer: customer_email is missing for appointment id=%s", id)
		return nil, fmt.Errorf("%w: customer_email is required", ErrInvalidInput)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetForCustomer: appointment id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetForCustomer: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetForCustomer - get appointment: %v", ErrInternal, err)
	}

	customer, err := s.customerRepo.GetByID(ctx, appointment.CustomerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetForCustomer: customer of appointment id=%s not found", id)
			return nil, ErrAccessDenied
		}
		s.logger.Error("GetForCustomer: repository error for customer id=%s: %v", appointment.CustomerID, err)
		return nil, fmt.Errorf("%w: GetForCustomer - get customer: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if !customer.MatchesEmail(email) {
		s.logger.Warn("GetForCustomer: email mismatch for appointment id=%s", id)
		return nil, ErrAccessDenied
	}

	pkg, err := s.packageRepo.GetByID(ctx, appointment.PackageID)
	if err != nil {
		s.logger.Error("GetForCustomer: failed to get package id=%s: %v", appointment.PackageID, err)
		return nil, fmt.Errorf("%w: GetForCustomer - get package: %v", ErrInternal, err)
	}

	slot, err := s.slotRepo.GetByID(ctx, appointment.TimeSlotID)
	if err != nil {
		s.logger.Error("GetForCustomer: failed to get slot id=%s: %v", appointment.TimeSlotID, err)
		return nil, fmt.Errorf("%w: GetForCustomer - get slot: %v", ErrInternal, err)
	}

	s.logger.Info("GetForCustomer: successfully fetched appointment id=%s", id)
	return models.FromDetails(&domain.AppointmentDetails{
		Appointment: appointment,
		Customer:    customer,
		Package:     pkg,
		Slot:        slot,
	}), nil
}
