package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/repository"
)

// staticReadiness is a Readiness stub with a fixed answer.
type staticReadiness bool

func (r staticReadiness) Ready(ctx context.Context) bool { return bool(r) }

const (
	remoteUp   staticReadiness = true
	remoteDown staticReadiness = false
)

// ──────────────────────────────────────────────
// MOCK FALLBACK LIST
// ──────────────────────────────────────────────

// mockList is an in-memory fallback.List with error injection.
type mockList[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) string

	// Counters for verification
	ReplaceAllCalls int32
	UpsertCalls     int32

	// Error injection
	GetAllError     error
	ReplaceAllError error
	UpsertError     error
	RemoveError     error
}

func newMockList[T any](id func(T) string) *mockList[T] {
	return &mockList[T]{id: id}
}

func (m *mockList[T]) GetAll(ctx context.Context) ([]T, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *mockList[T]) ReplaceAll(ctx context.Context, items []T) error {
	atomic.AddInt32(&m.ReplaceAllCalls, 1)
	if m.ReplaceAllError != nil {
		return m.ReplaceAllError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]T(nil), items...)
	return nil
}

func (m *mockList[T]) Upsert(ctx context.Context, item T) error {
	atomic.AddInt32(&m.UpsertCalls, 1)
	if m.UpsertError != nil {
		return m.UpsertError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id(item)
	for i := range m.items {
		if m.id(m.items[i]) == id {
			m.items[i] = item
			return nil
		}
	}
	m.items = append(m.items, item)
	return nil
}

func (m *mockList[T]) Remove(ctx context.Context, id string) error {
	if m.RemoveError != nil {
		return m.RemoveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.items[:0]
	for _, item := range m.items {
		if m.id(item) != id {
			kept = append(kept, item)
		}
	}
	m.items = kept
	return nil
}

// Len returns the stored item count for assertions.
func (m *mockList[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func newVehicleList() *mockList[*domain.Vehicle] {
	return newMockList(func(v *domain.Vehicle) string { return v.ID })
}

func newCustomerList() *mockList[*domain.Customer] {
	return newMockList(func(c *domain.Customer) string { return c.ID })
}

func newRentalList() *mockList[*domain.Rental] {
	return newMockList(func(r *domain.Rental) string { return r.ID })
}

func newPaymentList() *mockList[*domain.Payment] {
	return newMockList(func(p *domain.Payment) string { return p.ID })
}

func newLocationList() *mockList[*domain.PickupLocation] {
	return newMockList(func(l *domain.PickupLocation) string { return l.ID })
}

// ──────────────────────────────────────────────
// MOCK VEHICLE REPOSITORY
// ──────────────────────────────────────────────

type mockVehicleRepo struct {
	mu       sync.RWMutex
	vehicles map[string]*domain.Vehicle

	CreateCallCount int32

	GetAllError error
	GetError    error
	CreateError error
	UpdateError error
	DeleteError error
}

func newMockVehicleRepo() *mockVehicleRepo {
	return &mockVehicleRepo{vehicles: make(map[string]*domain.Vehicle)}
}

func (m *mockVehicleRepo) Add(v *domain.Vehicle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vehicles[v.ID] = v
}

func (m *mockVehicleRepo) GetAll(ctx context.Context) ([]*domain.Vehicle, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Vehicle, 0, len(m.vehicles))
	for _, v := range m.vehicles {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockVehicleRepo) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vehicles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (m *mockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vehicles[v.ID] = v
	return nil
}

func (m *mockVehicleRepo) Update(ctx context.Context, id string, upd domain.VehicleUpdate) (*domain.Vehicle, error) {
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vehicles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.Name != nil {
		v.Name = *upd.Name
	}
	if upd.DailyPrice != nil {
		v.DailyPrice = *upd.DailyPrice
	}
	if upd.Available != nil {
		v.Available = *upd.Available
	}
	cp := *v
	return &cp, nil
}

func (m *mockVehicleRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vehicles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.vehicles, id)
	return nil
}

// ──────────────────────────────────────────────
// MOCK CUSTOMER REPOSITORY
// ──────────────────────────────────────────────

type mockCustomerRepo struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer

	CreateCallCount int32

	GetAllError    error
	GetError       error
	CreateError    error
	UpdateError    error
	DeleteError    error
	IncrementError error
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func (m *mockCustomerRepo) Add(c *domain.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[c.ID] = c
}

func (m *mockCustomerRepo) Get(id string) *domain.Customer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.customers[id]
}

func (m *mockCustomerRepo) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCustomerRepo) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockCustomerRepo) FindByCPF(ctx context.Context, cpf string) (*domain.Customer, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.customers {
		if c.CPF == cpf {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[c.ID] = c
	return nil
}

func (m *mockCustomerRepo) Update(ctx context.Context, id string, upd domain.CustomerUpdate) (*domain.Customer, error) {
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	applyCustomerUpdate(c, upd)
	cp := *c
	return &cp, nil
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.customers, id)
	return nil
}

func (m *mockCustomerRepo) IncrementTotalRentals(ctx context.Context, id string, delta int) error {
	if m.IncrementError != nil {
		return m.IncrementError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.TotalRentals += delta
	return nil
}

// ──────────────────────────────────────────────
// MOCK RENTAL REPOSITORY
// ──────────────────────────────────────────────

type mockRentalRepo struct {
	mu      sync.RWMutex
	rentals map[string]*domain.Rental

	CreateCallCount int32

	GetAllError error
	GetError    error
	CreateError error
	UpdateError error
	DeleteError error
}

func newMockRentalRepo() *mockRentalRepo {
	return &mockRentalRepo{rentals: make(map[string]*domain.Rental)}
}

func (m *mockRentalRepo) Add(r *domain.Rental) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rentals[r.ID] = r
}

func (m *mockRentalRepo) GetAll(ctx context.Context) ([]*domain.Rental, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Rental, 0, len(m.rentals))
	for _, r := range m.rentals {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockRentalRepo) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rentals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockRentalRepo) GetByCustomer(ctx context.Context, customerID string) ([]*domain.Rental, error) {
	all, err := m.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []*domain.Rental
	for _, r := range all {
		if r.CustomerID == customerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRentalRepo) GetByVehicle(ctx context.Context, vehicleID string) ([]*domain.Rental, error) {
	all, err := m.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []*domain.Rental
	for _, r := range all {
		if r.VehicleID == vehicleID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRentalRepo) Create(ctx context.Context, r *domain.Rental) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.rentals[r.ID] = &cp
	return nil
}

func (m *mockRentalRepo) Update(ctx context.Context, id string, upd domain.RentalUpdate) (*domain.Rental, error) {
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rentals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	applyRentalUpdate(r, upd)
	cp := *r
	return &cp, nil
}

func (m *mockRentalRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rentals[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rentals, id)
	return nil
}

// ──────────────────────────────────────────────
// MOCK PAYMENT REPOSITORY
// ──────────────────────────────────────────────

type mockPaymentRepo struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment

	CreateCallCount int32

	GetAllError error
	GetError    error
	CreateError error
	UpdateError error
	DeleteError error
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{payments: make(map[string]*domain.Payment)}
}

func (m *mockPaymentRepo) GetAll(ctx context.Context) ([]*domain.Payment, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Payment, 0, len(m.payments))
	for _, p := range m.payments {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockPaymentRepo) GetByRental(ctx context.Context, rentalID string) ([]*domain.Payment, error) {
	all, err := m.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []*domain.Payment
	for _, p := range all {
		if p.RentalID == rentalID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.payments[p.ID] = &cp
	return nil
}

func (m *mockPaymentRepo) Update(ctx context.Context, id string, upd domain.PaymentUpdate) (*domain.Payment, error) {
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	applyPaymentUpdate(p, upd)
	cp := *p
	return &cp, nil
}

func (m *mockPaymentRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.payments, id)
	return nil
}

// ──────────────────────────────────────────────
// MOCK ADMIN REPOSITORY
// ──────────────────────────────────────────────

type mockAdminRepo struct {
	mu     sync.RWMutex
	admins map[string]*domain.AdminUser

	GetError error
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: make(map[string]*domain.AdminUser)}
}

func (m *mockAdminRepo) Add(a *domain.AdminUser) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.admins[a.Email] = a
}

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.admins[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}
