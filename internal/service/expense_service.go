// internal/service/expense_service.go
package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
	"github.com/chemichemie/carwash-backend/internal/storage"
	"github.com/rs/zerolog/log"
)

// ExpenseService wraps expense CRUD and receipt uploads. Receipts land in
// S3-compatible storage keyed by tenant; the stored URL goes on the row.
type ExpenseService struct {
	expenses repository.ExpenseRepository
	objects  storage.ObjectStorage
}

func NewExpenseService(expenses repository.ExpenseRepository, objects storage.ObjectStorage) *ExpenseService {
	return &ExpenseService{expenses: expenses, objects: objects}
}

func (s *ExpenseService) List(ctx context.Context, businessID, category string, limit, offset int) ([]domain.Expense, error) {
	return s.expenses.List(ctx, businessID, category, limit, offset)
}

func (s *ExpenseService) Get(ctx context.Context, businessID, id string) (*domain.Expense, error) {
	return s.expenses.GetByID(ctx, businessID, id)
}

func (s *ExpenseService) Create(ctx context.Context, e *domain.Expense) error {
	if e.Amount < 0 {
		return fmt.Errorf("expense amount must not be negative")
	}
	return s.expenses.Create(ctx, e)
}

func (s *ExpenseService) Update(ctx context.Context, e *domain.Expense) error {
	if e.Amount < 0 {
		return fmt.Errorf("expense amount must not be negative")
	}
	return s.expenses.Update(ctx, e)
}

// Delete removes the expense and, best effort, its stored receipt object.
func (s *ExpenseService) Delete(ctx context.Context, businessID, id string) error {
	e, err := s.expenses.GetByID(ctx, businessID, id)
	if err != nil {
		return err
	}
	if err := s.expenses.Delete(ctx, businessID, id); err != nil {
		return err
	}
	if e.ReceiptURL != nil {
		s.removeReceipt(ctx, businessID, *e.ReceiptURL)
	}
	return nil
}

// AttachReceipt uploads the receipt object and stores its URL on the
// expense, removing any previously attached receipt. Returns the URL.
func (s *ExpenseService) AttachReceipt(ctx context.Context, businessID, id, filename, contentType string, data []byte) (string, error) {
	if s.objects == nil {
		return "", fmt.Errorf("receipt storage is not configured")
	}
	e, err := s.expenses.GetByID(ctx, businessID, id)
	if err != nil {
		return "", err
	}
	previous := e.ReceiptURL

	key := fmt.Sprintf("%s/%s/%d%s", businessID, id, time.Now().UnixNano(), path.Ext(filename))
	url, err := s.objects.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", err
	}

	if err := s.expenses.SetReceiptURL(ctx, businessID, id, url); err != nil {
		return "", err
	}
	if previous != nil {
		s.removeReceipt(ctx, businessID, *previous)
	}
	return url, nil
}

// removeReceipt deletes the object a stored receipt URL points at. Object
// keys start with the tenant id, so the key is the URL's tail from there.
// Removal failures leave an orphan but never fail the calling operation.
func (s *ExpenseService) removeReceipt(ctx context.Context, businessID, url string) {
	if s.objects == nil {
		return
	}
	idx := strings.Index(url, businessID+"/")
	if idx < 0 {
		log.Warn().Str("url", url).Msg("expenses: receipt url has no recognizable object key")
		return
	}
	if err := s.objects.Remove(ctx, url[idx:]); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("expenses: receipt object removal failed")
	}
}
