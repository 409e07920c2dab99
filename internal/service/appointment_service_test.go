// internal/service/appointment_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentRepo struct {
	byID          map[string]*domain.Appointment
	statusUpdates []domain.AppointmentStatus
	created       []*domain.Appointment
}

func (f *fakeAppointmentRepo) List(ctx context.Context, businessID string, filter repository.AppointmentFilter) ([]domain.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, businessID, id string) (*domain.Appointment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, a *domain.Appointment) error {
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, a *domain.Appointment) error { return nil }

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, businessID, id string, status domain.AppointmentStatus) error {
	f.statusUpdates = append(f.statusUpdates, status)
	if a, ok := f.byID[id]; ok {
		a.Status = status
	}
	return nil
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, businessID, id string) error { return nil }

func (f *fakeAppointmentRepo) CountByStatus(ctx context.Context, businessID string, status domain.AppointmentStatus) (int, error) {
	return 0, nil
}

type fakeCustomerRepo struct {
	repository.CustomerRepository

	known  map[string]bool
	visits []string
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, businessID, id string) (*domain.Customer, error) {
	if !f.known[id] {
		return nil, repository.ErrNotFound
	}
	return &domain.Customer{ID: id, BusinessID: businessID}, nil
}

func (f *fakeCustomerRepo) RecordVisit(ctx context.Context, businessID, customerID string) error {
	f.visits = append(f.visits, customerID)
	return nil
}

type fakeServiceRepo struct {
	repository.ServiceRepository

	services map[string]*domain.Service
	bumped   []string
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, businessID, id string) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (f *fakeServiceRepo) IncrementPopularity(ctx context.Context, businessID, id string) error {
	f.bumped = append(f.bumped, id)
	return nil
}

type fakePaymentRepo struct {
	repository.PaymentRepository

	created []*domain.Payment
}

func (f *fakePaymentRepo) Create(ctx context.Context, businessID string, p *domain.Payment) error {
	f.created = append(f.created, p)
	return nil
}

func newBookingFixture() (*AppointmentService, *fakeAppointmentRepo, *fakeCustomerRepo, *fakeServiceRepo, *fakePaymentRepo) {
	appointments := &fakeAppointmentRepo{byID: map[string]*domain.Appointment{}}
	customers := &fakeCustomerRepo{known: map[string]bool{"c1": true}}
	catalog := &fakeServiceRepo{services: map[string]*domain.Service{
		"s1": {ID: "s1", Name: "Standard Wash", Price: 800},
	}}
	payments := &fakePaymentRepo{}
	svc := NewAppointmentService(appointments, customers, catalog, payments)
	return svc, appointments, customers, catalog, payments
}

func TestBookDefaultsAmountFromCatalog(t *testing.T) {
	svc, appointments, _, _, _ := newBookingFixture()

	a := &domain.Appointment{
		BusinessID:  "biz-1",
		CustomerID:  "c1",
		ServiceID:   "s1",
		ScheduledAt: time.Now(),
	}
	require.NoError(t, svc.Book(context.Background(), a))
	require.Len(t, appointments.created, 1)
	assert.Equal(t, 800.0, a.TotalAmount)
}

func TestBookKeepsExplicitAmount(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture()

	a := &domain.Appointment{
		BusinessID:  "biz-1",
		CustomerID:  "c1",
		ServiceID:   "s1",
		ScheduledAt: time.Now(),
		TotalAmount: 650,
	}
	require.NoError(t, svc.Book(context.Background(), a))
	assert.Equal(t, 650.0, a.TotalAmount)
}

func TestBookRejectsUnknownCustomer(t *testing.T) {
	svc, appointments, _, _, _ := newBookingFixture()

	a := &domain.Appointment{BusinessID: "biz-1", CustomerID: "ghost", ServiceID: "s1"}
	err := svc.Book(context.Background(), a)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, appointments.created)
}

func TestBookRejectsUnknownService(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture()

	a := &domain.Appointment{BusinessID: "biz-1", CustomerID: "c1", ServiceID: "ghost"}
	assert.ErrorIs(t, svc.Book(context.Background(), a), repository.ErrNotFound)
}

func TestSetStatusCompletionSideEffects(t *testing.T) {
	svc, appointments, customers, catalog, _ := newBookingFixture()
	appointments.byID["a1"] = &domain.Appointment{
		ID: "a1", BusinessID: "biz-1", CustomerID: "c1", ServiceID: "s1",
		Status: domain.AppointmentInProgress,
	}

	err := svc.SetStatus(context.Background(), "biz-1", "a1", domain.AppointmentCompleted)
	require.NoError(t, err)

	assert.Equal(t, []domain.AppointmentStatus{domain.AppointmentCompleted}, appointments.statusUpdates)
	assert.Equal(t, []string{"c1"}, customers.visits)
	assert.Equal(t, []string{"s1"}, catalog.bumped)
}

func TestSetStatusCompletionIsIdempotentOnSideEffects(t *testing.T) {
	svc, appointments, customers, catalog, _ := newBookingFixture()
	appointments.byID["a1"] = &domain.Appointment{
		ID: "a1", BusinessID: "biz-1", CustomerID: "c1", ServiceID: "s1",
		Status: domain.AppointmentCompleted,
	}

	err := svc.SetStatus(context.Background(), "biz-1", "a1", domain.AppointmentCompleted)
	require.NoError(t, err)

	// Already completed: the visit and popularity counters must not move again.
	assert.Empty(t, customers.visits)
	assert.Empty(t, catalog.bumped)
}

func TestSetStatusRejectsInvalidValue(t *testing.T) {
	svc, appointments, _, _, _ := newBookingFixture()

	err := svc.SetStatus(context.Background(), "biz-1", "a1", "finished")
	require.Error(t, err)
	assert.Empty(t, appointments.statusUpdates)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, _, _, _, payments := newBookingFixture()

	err := svc.RecordPayment(context.Background(), "biz-1", &domain.Payment{Amount: 0})
	require.Error(t, err)
	assert.Empty(t, payments.created)
}

func TestRecordPayment(t *testing.T) {
	svc, _, _, _, payments := newBookingFixture()

	p := &domain.Payment{AppointmentID: "a1", Amount: 800, Method: "cash", Status: domain.PaymentCompleted}
	require.NoError(t, svc.RecordPayment(context.Background(), "biz-1", p))
	require.Len(t, payments.created, 1)
}

func TestSetPaymentStatusRejectsInvalidValue(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture()

	assert.Error(t, svc.SetPaymentStatus(context.Background(), "biz-1", "p1", "refunded"))
}
