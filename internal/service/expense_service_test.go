// internal/service/expense_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpenseRepo struct {
	repository.ExpenseRepository

	byID    map[string]*domain.Expense
	deleted []string
}

func (f *fakeExpenseRepo) GetByID(ctx context.Context, businessID, id string) (*domain.Expense, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return e, nil
}

func (f *fakeExpenseRepo) Delete(ctx context.Context, businessID, id string) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeExpenseRepo) SetReceiptURL(ctx context.Context, businessID, id, url string) error {
	e, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	e.ReceiptURL = &url
	return nil
}

type fakeObjectStorage struct {
	uploaded []string
	removed  []string
}

func (f *fakeObjectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	f.uploaded = append(f.uploaded, key)
	return "http://objects.local/receipts/" + key, nil
}

func (f *fakeObjectStorage) Remove(ctx context.Context, key string) error {
	f.removed = append(f.removed, key)
	return nil
}

func newExpenseFixture(receiptURL *string) (*ExpenseService, *fakeExpenseRepo, *fakeObjectStorage) {
	repo := &fakeExpenseRepo{byID: map[string]*domain.Expense{
		"x1": {ID: "x1", BusinessID: "biz-1", Category: "supplies", Amount: 200, ReceiptURL: receiptURL},
	}}
	objects := &fakeObjectStorage{}
	return NewExpenseService(repo, objects), repo, objects
}

func TestDeleteRemovesReceiptObject(t *testing.T) {
	url := "http://objects.local/receipts/biz-1/x1/42.pdf"
	svc, repo, objects := newExpenseFixture(&url)

	require.NoError(t, svc.Delete(context.Background(), "biz-1", "x1"))

	assert.Equal(t, []string{"x1"}, repo.deleted)
	assert.Equal(t, []string{"biz-1/x1/42.pdf"}, objects.removed)
}

func TestDeleteWithoutReceiptSkipsStorage(t *testing.T) {
	svc, repo, objects := newExpenseFixture(nil)

	require.NoError(t, svc.Delete(context.Background(), "biz-1", "x1"))

	assert.Equal(t, []string{"x1"}, repo.deleted)
	assert.Empty(t, objects.removed)
}

func TestDeleteMissingExpense(t *testing.T) {
	svc, _, objects := newExpenseFixture(nil)

	err := svc.Delete(context.Background(), "biz-1", "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, objects.removed)
}

func TestAttachReceiptReplacesPreviousObject(t *testing.T) {
	url := "http://objects.local/receipts/biz-1/x1/41.pdf"
	svc, repo, objects := newExpenseFixture(&url)

	got, err := svc.AttachReceipt(context.Background(), "biz-1", "x1", "scan.pdf", "application/pdf", []byte("pdf"))
	require.NoError(t, err)
	require.NotEmpty(t, got)

	require.NotNil(t, repo.byID["x1"].ReceiptURL)
	assert.Equal(t, got, *repo.byID["x1"].ReceiptURL)
	assert.Equal(t, []string{"biz-1/x1/41.pdf"}, objects.removed)
	require.Len(t, objects.uploaded, 1)
}

func TestAttachReceiptFirstUploadRemovesNothing(t *testing.T) {
	svc, _, objects := newExpenseFixture(nil)

	_, err := svc.AttachReceipt(context.Background(), "biz-1", "x1", "scan.jpg", "image/jpeg", []byte("jpg"))
	require.NoError(t, err)

	assert.Empty(t, objects.removed)
	require.Len(t, objects.uploaded, 1)
}
