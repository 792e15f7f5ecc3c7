package models

import (
	"errors"
)

var (
	ErrNoRecord          = errors.New("models: no matching record found")
	ErrDuplicateCompany  = errors.New("models: duplicate company code")
	ErrCompanyNotFound   = errors.New("company not found")
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrNoCompanyInvoices = errors.New("no invoices for company")
)
