// internal/service/record_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecordRepo struct {
	repository.ServiceRecordRepository

	created []*domain.ServiceRecord
}

func (f *fakeRecordRepo) Create(ctx context.Context, r *domain.ServiceRecord) error {
	f.created = append(f.created, r)
	return nil
}

type fakeEmployeeRepo struct {
	repository.EmployeeRepository

	known map[string]bool
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, businessID, id string) (*domain.Employee, error) {
	if !f.known[id] {
		return nil, repository.ErrNotFound
	}
	return &domain.Employee{ID: id, BusinessID: businessID}, nil
}

func newWalkInFixture() (*RecordService, *fakeRecordRepo) {
	records := &fakeRecordRepo{}
	catalog := &fakeServiceRepo{services: map[string]*domain.Service{
		"s1": {ID: "s1", Name: "Standard Wash", Price: 800, Duration: 30},
	}}
	employees := &fakeEmployeeRepo{known: map[string]bool{"e1": true}}
	return NewRecordService(records, catalog, employees), records
}

func TestLogSnapshotsCatalogPriceAndDuration(t *testing.T) {
	svc, records := newWalkInFixture()

	rec := &domain.ServiceRecord{
		BusinessID:    "biz-1",
		ServiceID:     "s1",
		EmployeeID:    "e1",
		VehiclePlate:  "KDA 123X",
		VehicleType:   "sedan",
		PaymentMethod: "cash",
	}
	require.NoError(t, svc.Log(context.Background(), rec))

	require.Len(t, records.created, 1)
	assert.Equal(t, 800.0, rec.ServicePrice)
	assert.Equal(t, 30, rec.ServiceDuration)
	assert.False(t, rec.CompletedAt.IsZero())
}

func TestLogKeepsExplicitPrice(t *testing.T) {
	svc, _ := newWalkInFixture()

	rec := &domain.ServiceRecord{
		BusinessID:    "biz-1",
		ServiceID:     "s1",
		EmployeeID:    "e1",
		VehiclePlate:  "KDA 123X",
		VehicleType:   "suv",
		PaymentMethod: "mobile",
		ServicePrice:  650,
	}
	require.NoError(t, svc.Log(context.Background(), rec))

	assert.Equal(t, 650.0, rec.ServicePrice)
}

func TestLogRejectsUnknownService(t *testing.T) {
	svc, records := newWalkInFixture()

	err := svc.Log(context.Background(), &domain.ServiceRecord{
		BusinessID: "biz-1", ServiceID: "missing", EmployeeID: "e1",
		VehiclePlate: "KDA 123X", VehicleType: "sedan", PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, records.created)
}

func TestLogRejectsUnknownEmployee(t *testing.T) {
	svc, records := newWalkInFixture()

	err := svc.Log(context.Background(), &domain.ServiceRecord{
		BusinessID: "biz-1", ServiceID: "s1", EmployeeID: "missing",
		VehiclePlate: "KDA 123X", VehicleType: "sedan", PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, records.created)
}

func TestLogRejectsNegativePrice(t *testing.T) {
	svc, records := newWalkInFixture()

	err := svc.Log(context.Background(), &domain.ServiceRecord{
		BusinessID: "biz-1", ServiceID: "s1", EmployeeID: "e1",
		VehiclePlate: "KDA 123X", VehicleType: "sedan", PaymentMethod: "cash",
		ServicePrice: -100,
	})
	assert.Error(t, err)
	assert.Empty(t, records.created)
}
