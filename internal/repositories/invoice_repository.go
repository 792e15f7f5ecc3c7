package repositories

import (
	"context"
	"fmt"
	"time"

	"biztime/internal/database"
	"biztime/internal/models"
)

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

type InvoiceRepository struct {
	DB database.TxQuerier
}

func invoiceFromRow(row database.Row) (models.Invoice, error) {
	var inv models.Invoice
	var err error
	if inv.ID, err = row.Int64("id"); err != nil {
		return inv, err
	}
	if inv.CompCode, err = row.String("comp_code"); err != nil {
		return inv, err
	}
	if inv.Amt, err = row.Float64("amt"); err != nil {
		return inv, err
	}
	if inv.Paid, err = row.Bool("paid"); err != nil {
		return inv, err
	}
	added, err := row.Time("add_date")
	if err != nil {
		return inv, err
	}
	inv.AddDate = models.NewDate(added)
	paidDate, err := row.NullTime("paid_date")
	if err != nil {
		return inv, err
	}
	inv.PaidDate = models.DatePtr(paidDate)
	return inv, nil
}

func invoicesFromResult(res *database.Result) ([]models.Invoice, error) {
	invoices := make([]models.Invoice, 0, res.RowCount)
	for _, row := range res.Rows {
		inv, err := invoiceFromRow(row)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func summaryFromRow(row database.Row) (models.InvoiceSummary, error) {
	var s models.InvoiceSummary
	var err error
	if s.ID, err = row.Int64("id"); err != nil {
		return s, err
	}
	if s.CompCode, err = row.String("comp_code"); err != nil {
		return s, err
	}
	return s, nil
}

func (r *InvoiceRepository) GetInvoices(ctx context.Context) ([]models.InvoiceSummary, error) {
	res, err := r.DB.Query(ctx, `SELECT id, comp_code FROM invoices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select invoices: %w", err)
	}

	invoices := make([]models.InvoiceSummary, 0, res.RowCount)
	for _, row := range res.Rows {
		s, err := summaryFromRow(row)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, s)
	}
	return invoices, nil
}

// GetInvoiceDetail joins the invoice with its company. Invoices whose
// company row is missing are not returned.
func (r *InvoiceRepository) GetInvoiceDetail(ctx context.Context, id int64) (models.InvoiceDetail, error) {
	query := `
		SELECT i.id, i.amt, i.paid, i.add_date, i.paid_date, c.code, c.name, c.description
		FROM invoices AS i
		INNER JOIN companies AS c ON i.comp_code = c.code
		WHERE i.id = $1`
	res, err := r.DB.Query(ctx, query, id)
	if err != nil {
		return models.InvoiceDetail{}, fmt.Errorf("select invoice %d: %w", id, err)
	}
	row, ok := res.First()
	if !ok {
		return models.InvoiceDetail{}, fmt.Errorf("invoice %d: %w", id, models.ErrNoRecord)
	}

	var d models.InvoiceDetail
	if d.ID, err = row.Int64("id"); err != nil {
		return d, err
	}
	if d.Amt, err = row.Float64("amt"); err != nil {
		return d, err
	}
	if d.Paid, err = row.Bool("paid"); err != nil {
		return d, err
	}
	added, err := row.Time("add_date")
	if err != nil {
		return d, err
	}
	d.AddDate = models.NewDate(added)
	paidDate, err := row.NullTime("paid_date")
	if err != nil {
		return d, err
	}
	d.PaidDate = models.DatePtr(paidDate)
	if d.Company, err = companyFromRow(row); err != nil {
		return d, err
	}
	return d, nil
}

// CreateInvoice inserts an invoice; paid, add_date and paid_date take their
// column defaults.
func (r *InvoiceRepository) CreateInvoice(ctx context.Context, in models.NewInvoice) (models.Invoice, error) {
	query := `INSERT INTO invoices (comp_code, amt) VALUES ($1, $2) RETURNING ` + invoiceColumns
	res, err := r.DB.Query(ctx, query, in.CompCode, in.Amt)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("insert invoice: %w", err)
	}
	row, ok := res.First()
	if !ok {
		return models.Invoice{}, fmt.Errorf("insert invoice: %w", models.ErrNoRecord)
	}
	return invoiceFromRow(row)
}

// UpdateInvoice sets amt and paid, and sets paid_date to whatever next
// returns for the stored paid_date. The row is locked between the read and
// the write so concurrent updates cannot interleave.
func (r *InvoiceRepository) UpdateInvoice(ctx context.Context, id int64, upd models.InvoiceUpdate, next func(current *time.Time) *time.Time) (models.Invoice, error) {
	var inv models.Invoice
	err := r.DB.WithTx(ctx, func(q database.Querier) error {
		res, err := q.Query(ctx, `SELECT paid_date FROM invoices WHERE id = $1 FOR UPDATE`, id)
		if err != nil {
			return fmt.Errorf("select invoice %d: %w", id, err)
		}
		row, ok := res.First()
		if !ok {
			return fmt.Errorf("invoice %d: %w", id, models.ErrNoRecord)
		}
		current, err := row.NullTime("paid_date")
		if err != nil {
			return err
		}

		query := `UPDATE invoices SET amt = $1, paid = $2, paid_date = $3 WHERE id = $4 RETURNING ` + invoiceColumns
		res, err = q.Query(ctx, query, upd.Amt, upd.Paid, next(current), id)
		if err != nil {
			return fmt.Errorf("update invoice %d: %w", id, err)
		}
		row, ok = res.First()
		if !ok {
			return fmt.Errorf("invoice %d: %w", id, models.ErrNoRecord)
		}
		inv, err = invoiceFromRow(row)
		return err
	})
	return inv, err
}

// DeleteInvoice removes the invoice and returns its id and company code.
func (r *InvoiceRepository) DeleteInvoice(ctx context.Context, id int64) (models.InvoiceSummary, error) {
	res, err := r.DB.Query(ctx, `DELETE FROM invoices WHERE id = $1 RETURNING id, comp_code`, id)
	if err != nil {
		return models.InvoiceSummary{}, fmt.Errorf("delete invoice %d: %w", id, err)
	}
	row, ok := res.First()
	if !ok {
		return models.InvoiceSummary{}, fmt.Errorf("invoice %d: %w", id, models.ErrNoRecord)
	}
	return summaryFromRow(row)
}

func (r *InvoiceRepository) GetInvoicesByCompany(ctx context.Context, code string) ([]models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE comp_code = $1 ORDER BY id`
	res, err := r.DB.Query(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("select invoices for %q: %w", code, err)
	}
	return invoicesFromResult(res)
}
