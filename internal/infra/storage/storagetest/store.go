// Package storagetest содержит in-memory реализацию репозиториев для тестов use case и хендлеров.
// Ошибки совпадают с ошибками настоящих репозиториев, поэтому errors.Is в вызывающем коде работает одинаково
package storagetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/customer"
	slotRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/slot"
	studioRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/studio"
)

type state struct {
	studios      map[uuid.UUID]domain.Studio
	packages     map[uuid.UUID]domain.Package
	slots        map[uuid.UUID]domain.Slot
	customers    map[uuid.UUID]domain.Customer
	appointments map[uuid.UUID]domain.Appointment
}

func newState() state {
	return state{
		studios:      make(map[uuid.UUID]domain.Studio),
		packages:     make(map[uuid.UUID]domain.Package),
		slots:        make(map[uuid.UUID]domain.Slot),
		customers:    make(map[uuid.UUID]domain.Customer),
		appointments: make(map[uuid.UUID]domain.Appointment),
	}
}

func (s state) clone() state {
	c := newState()
	for k, v := range s.studios {
		c.studios[k] = v
	}
	for k, v := range s.packages {
		c.packages[k] = v
	}
	for k, v := range s.slots {
		c.slots[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.appointments {
		c.appointments[k] = v
	}
	return c
}

// Store in-memory хранилище
type Store struct {
	mu   sync.Mutex
	data state

	// txMu сериализует транзакции, откат восстанавливает снимок
	txMu sync.Mutex
}

// New создает пустое хранилище
func New() *Store {
	return &Store{data: newState()}
}

func (s *Store) Studios() *Studios           { return &Studios{s: s} }
func (s *Store) Packages() *Packages         { return &Packages{s: s} }
func (s *Store) Slots() *Slots               { return &Slots{s: s} }
func (s *Store) Customers() *Customers       { return &Customers{s: s} }
func (s *Store) Appointments() *Appointments { return &Appointments{s: s} }
func (s *Store) TxManager() *TxManager       { return &TxManager{s: s} }

// AddStudio добавляет студию
func (s *Store) AddStudio(st domain.Studio) *domain.Studio {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.ID == uuid.Nil {
		st.ID = uuid.New()
	}
	s.data.studios[st.ID] = st
	return &st
}

// AddPackage добавляет пакет
func (s *Store) AddPackage(p domain.Package) *domain.Package {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	s.data.packages[p.ID] = p
	return &p
}

// AddSlot добавляет слот
func (s *Store) AddSlot(sl domain.Slot) *domain.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sl.ID == uuid.Nil {
		sl.ID = uuid.New()
	}
	s.data.slots[sl.ID] = sl
	return &sl
}

// AddAppointment добавляет бронирование без изменения счетчика слота
func (s *Store) AddAppointment(a domain.Appointment) *domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.data.appointments[a.ID] = a
	return &a
}

// AddCustomer добавляет клиента
func (s *Store) AddCustomer(c domain.Customer) *domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Email = domain.NormalizeEmail(c.Email)
	s.data.customers[c.ID] = c
	return &c
}

// Slot возвращает текущее состояние слота
func (s *Store) Slot(id uuid.UUID) domain.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.slots[id]
}

// Appointment возвращает текущее состояние бронирования
func (s *Store) Appointment(id uuid.UUID) domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.appointments[id]
}

// CountAppointments количество бронирований на слот со статусом из statuses (все, если пусто)
func (s *Store) CountAppointments(slotID uuid.UUID, statuses ...domain.AppointmentStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, a := range s.data.appointments {
		if a.TimeSlotID != slotID {
			continue
		}
		if len(statuses) == 0 || containsStatus(statuses, a.Status) {
			n++
		}
	}
	return n
}

// CountCustomers количество клиентов
func (s *Store) CountCustomers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.customers)
}

func containsStatus(list []domain.AppointmentStatus, st domain.AppointmentStatus) bool {
	for _, v := range list {
		if v == st {
			return true
		}
	}
	return false
}

// TxManager транзакции поверх Store: одна транзакция в момент времени, откат по ошибке
type TxManager struct {
	s *Store
}

type txKey struct{}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	m.s.mu.Lock()
	snapshot := m.s.data.clone()
	m.s.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			m.rollback(snapshot)
			panic(p)
		}
		if err != nil {
			m.rollback(snapshot)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, true))
}

func (m *TxManager) rollback(snapshot state) {
	m.s.mu.Lock()
	m.s.data = snapshot
	m.s.mu.Unlock()
}

// Studios репозиторий студий
type Studios struct{ s *Store }

func (r *Studios) GetActiveBySlug(_ context.Context, slug string) (*domain.Studio, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, st := range r.s.data.studios {
		if st.Slug == slug && st.IsActive {
			st := st
			return &st, nil
		}
	}
	return nil, studioRepo.ErrStudioNotFound
}

func (r *Studios) GetActiveByID(_ context.Context, id uuid.UUID) (*domain.Studio, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.data.studios[id]
	if !ok || !st.IsActive {
		return nil, studioRepo.ErrStudioNotFound
	}
	return &st, nil
}

// Packages репозиторий пакетов
type Packages struct{ s *Store }

func (r *Packages) GetByID(_ context.Context, id uuid.UUID) (*domain.Package, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.data.packages[id]
	if !ok {
		return nil, catalogRepo.ErrPackageNotFound
	}
	return &p, nil
}

func (r *Packages) GetPublicByID(_ context.Context, id uuid.UUID) (*domain.Package, error) {
	return r.findPublic(func(p domain.Package) bool { return p.ID == id })
}

func (r *Packages) GetPublicByStudioAndID(_ context.Context, studioID, id uuid.UUID) (*domain.Package, error) {
	return r.findPublic(func(p domain.Package) bool { return p.ID == id && p.StudioID == studioID })
}

func (r *Packages) GetPublicByStudioAndSlug(_ context.Context, studioID uuid.UUID, slug string) (*domain.Package, error) {
	return r.findPublic(func(p domain.Package) bool { return p.Slug == slug && p.StudioID == studioID })
}

func (r *Packages) ListPublicByStudio(_ context.Context, studioID uuid.UUID) ([]*domain.Package, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*domain.Package, 0)
	for _, p := range r.s.data.packages {
		if p.StudioID == studioID && p.IsBookable() {
			p := p
			result = append(result, &p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DisplayOrder != result[j].DisplayOrder {
			return result[i].DisplayOrder < result[j].DisplayOrder
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *Packages) findPublic(match func(p domain.Package) bool) (*domain.Package, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.data.packages {
		if match(p) && p.IsBookable() {
			p := p
			return &p, nil
		}
	}
	return nil, catalogRepo.ErrPackageNotFound
}

// Slots репозиторий слотов
type Slots struct{ s *Store }

func (r *Slots) GetByID(_ context.Context, id uuid.UUID) (*domain.Slot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sl, ok := r.s.data.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return &sl, nil
}

func (r *Slots) ListAvailable(_ context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	from, to := domain.DateOnly(filter.DateFrom), domain.DateOnly(filter.DateTo)
	result := make([]*domain.Slot, 0)
	for _, sl := range r.s.data.slots {
		day := domain.DateOnly(sl.Date)
		switch {
		case sl.StudioID != filter.StudioID, !sl.IsAvailable, !sl.HasCapacity():
			continue
		case day.Before(from), day.After(to):
			continue
		case filter.PackageID != nil && !sl.AcceptsPackage(*filter.PackageID):
			continue
		}
		sl := sl
		result = append(result, &sl)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})
	return result, nil
}

func (r *Slots) Reserve(_ context.Context, id uuid.UUID, today time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sl, ok := r.s.data.slots[id]
	if !ok || !sl.IsBookableOn(today) {
		return slotRepo.ErrSlotNotAvailable
	}
	sl.CurrentBookings++
	r.s.data.slots[id] = sl
	return nil
}

func (r *Slots) Release(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sl, ok := r.s.data.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	if sl.CurrentBookings > 0 {
		sl.CurrentBookings--
	}
	r.s.data.slots[id] = sl
	return nil
}

// Customers репозиторий клиентов
type Customers struct{ s *Store }

func (r *Customers) GetOrCreate(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	email := domain.NormalizeEmail(c.Email)
	for _, existing := range r.s.data.customers {
		if existing.Email == email {
			existing := existing
			return &existing, nil
		}
	}

	created := *c
	created.Email = email
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	created.CreatedAt = time.Now()
	r.s.data.customers[created.ID] = created
	return &created, nil
}

func (r *Customers) GetByID(_ context.Context, id uuid.UUID) (*domain.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.data.customers[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return &c, nil
}

// Appointments репозиторий бронирований
type Appointments struct{ s *Store }

func (r *Appointments) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, slotOK := r.s.data.slots[a.TimeSlotID]
	_, pkgOK := r.s.data.packages[a.PackageID]
	_, customerOK := r.s.data.customers[a.CustomerID]
	if !slotOK || !pkgOK || !customerOK {
		return nil, appointmentRepo.ErrReferenceNotFound
	}

	created := *a
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	now := time.Now()
	created.CreatedAt, created.UpdatedAt = now, now
	r.s.data.appointments[created.ID] = created
	return &created, nil
}

func (r *Appointments) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.data.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return &a, nil
}

func (r *Appointments) Cancel(_ context.Context, id uuid.UUID, reason *string, cancelledAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.data.appointments[id]
	if !ok || !a.CanBeCancelled() {
		return appointmentRepo.ErrCannotCancel
	}
	a.Status = domain.StatusCancelled
	a.CancelledAt = &cancelledAt
	a.CancellationReason = reason
	a.UpdatedAt = cancelledAt
	r.s.data.appointments[id] = a
	return nil
}
