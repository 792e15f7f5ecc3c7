package handlers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"biztime/internal/models"
)

type mockCompanyStore struct {
	mock.Mock
}

func (m *mockCompanyStore) GetCompanies(ctx context.Context) ([]models.Company, error) {
	args := m.Called()
	return args.Get(0).([]models.Company), args.Error(1)
}

func (m *mockCompanyStore) GetCompanyByCode(ctx context.Context, code string) (models.Company, error) {
	args := m.Called(code)
	return args.Get(0).(models.Company), args.Error(1)
}

func (m *mockCompanyStore) CreateCompany(ctx context.Context, in models.CompanyInput) (models.Company, error) {
	args := m.Called(in)
	return args.Get(0).(models.Company), args.Error(1)
}

func (m *mockCompanyStore) UpdateCompany(ctx context.Context, code string, in models.CompanyInput) (models.Company, error) {
	args := m.Called(code, in)
	return args.Get(0).(models.Company), args.Error(1)
}

func (m *mockCompanyStore) DeleteCompany(ctx context.Context, code string) (models.Company, error) {
	args := m.Called(code)
	return args.Get(0).(models.Company), args.Error(1)
}

type mockInvoiceStore struct {
	mock.Mock
}

func (m *mockInvoiceStore) GetInvoices(ctx context.Context) ([]models.InvoiceSummary, error) {
	args := m.Called()
	return args.Get(0).([]models.InvoiceSummary), args.Error(1)
}

func (m *mockInvoiceStore) GetInvoiceDetail(ctx context.Context, id int64) (models.InvoiceDetail, error) {
	args := m.Called(id)
	return args.Get(0).(models.InvoiceDetail), args.Error(1)
}

func (m *mockInvoiceStore) CreateInvoice(ctx context.Context, in models.NewInvoice) (models.Invoice, error) {
	args := m.Called(in)
	return args.Get(0).(models.Invoice), args.Error(1)
}

// UpdateInvoice hands the transition function the paid_date configured via
// the "current" return value, mirroring what the repository reads.
func (m *mockInvoiceStore) UpdateInvoice(ctx context.Context, id int64, upd models.InvoiceUpdate, next func(*time.Time) *time.Time) (models.Invoice, error) {
	args := m.Called(id, upd)
	inv := args.Get(0).(models.Invoice)
	if args.Error(1) != nil {
		return inv, args.Error(1)
	}
	current, _ := args.Get(2).(*time.Time)
	inv.PaidDate = models.DatePtr(next(current))
	return inv, nil
}

func (m *mockInvoiceStore) DeleteInvoice(ctx context.Context, id int64) (models.InvoiceSummary, error) {
	args := m.Called(id)
	return args.Get(0).(models.InvoiceSummary), args.Error(1)
}

func (m *mockInvoiceStore) GetInvoicesByCompany(ctx context.Context, code string) ([]models.Invoice, error) {
	args := m.Called(code)
	return args.Get(0).([]models.Invoice), args.Error(1)
}
