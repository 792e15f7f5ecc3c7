package models

// Invoice is a full row of the invoices table.
type Invoice struct {
	ID       int64   `json:"id"`
	CompCode string  `json:"comp_code"`
	Amt      float64 `json:"amt"`
	Paid     bool    `json:"paid"`
	AddDate  Date    `json:"add_date"`
	PaidDate *Date   `json:"paid_date"`
}

// InvoiceSummary is the short form used by the invoice listing.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceDetail is an invoice joined with the company it is billed to.
type InvoiceDetail struct {
	ID       int64   `json:"id"`
	Company  Company `json:"company"`
	Amt      float64 `json:"amt"`
	Paid     bool    `json:"paid"`
	AddDate  Date    `json:"add_date"`
	PaidDate *Date   `json:"paid_date"`
}

// NewInvoice is the body accepted when creating an invoice.
type NewInvoice struct {
	CompCode *string  `json:"comp_code"`
	Amt      *float64 `json:"amt"`
}

// InvoiceUpdate is the body accepted when updating an invoice.
type InvoiceUpdate struct {
	Amt  *float64 `json:"amt"`
	Paid *bool    `json:"paid"`
}
