package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"biztime/internal/models"
)

// InvoiceStore is the persistence contract InvoiceService relies on.
type InvoiceStore interface {
	GetInvoices(ctx context.Context) ([]models.InvoiceSummary, error)
	GetInvoiceDetail(ctx context.Context, id int64) (models.InvoiceDetail, error)
	CreateInvoice(ctx context.Context, in models.NewInvoice) (models.Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, upd models.InvoiceUpdate, next func(current *time.Time) *time.Time) (models.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) (models.InvoiceSummary, error)
	GetInvoicesByCompany(ctx context.Context, code string) ([]models.Invoice, error)
}

// Clock supplies the current calendar date.
type Clock interface {
	Today() time.Time
}

type InvoiceService struct {
	InvoiceRepo InvoiceStore
	Clock       Clock
}

func invoiceNotFound(err error) error {
	if errors.Is(err, models.ErrNoRecord) {
		return fmt.Errorf("%w: %w", models.ErrInvoiceNotFound, err)
	}
	return err
}

func (s *InvoiceService) GetInvoices(ctx context.Context) ([]models.InvoiceSummary, error) {
	return s.InvoiceRepo.GetInvoices(ctx)
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id int64) (models.InvoiceDetail, error) {
	d, err := s.InvoiceRepo.GetInvoiceDetail(ctx, id)
	return d, invoiceNotFound(err)
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, in models.NewInvoice) (models.Invoice, error) {
	return s.InvoiceRepo.CreateInvoice(ctx, in)
}

// UpdateInvoice writes amt and paid and moves paid_date according to
// NextPaidDate. A missing paid flag counts as unpaid for the transition and
// is still written as NULL, so the database rejects it.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id int64, upd models.InvoiceUpdate) (models.Invoice, error) {
	paid := upd.Paid != nil && *upd.Paid
	today := s.Clock.Today()

	inv, err := s.InvoiceRepo.UpdateInvoice(ctx, id, upd, func(current *time.Time) *time.Time {
		return NextPaidDate(current, paid, today)
	})
	return inv, invoiceNotFound(err)
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id int64) (models.InvoiceSummary, error) {
	inv, err := s.InvoiceRepo.DeleteInvoice(ctx, id)
	return inv, invoiceNotFound(err)
}

// GetInvoicesByCompany lists a company's invoices. An empty result is
// reported as models.ErrNoCompanyInvoices whether or not the company exists.
func (s *InvoiceService) GetInvoicesByCompany(ctx context.Context, code string) ([]models.Invoice, error) {
	invoices, err := s.InvoiceRepo.GetInvoicesByCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrNoCompanyInvoices, code)
	}
	return invoices, nil
}
