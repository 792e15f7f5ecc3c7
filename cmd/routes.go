package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.requestID, app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)

	handle := func(name string, fn http.HandlerFunc) http.Handler {
		return standardMiddleware.Then(app.metrics.Instrument(name, fn))
	}

	mux := pat.New()

	// Companies
	mux.Get("/companies", handle("list_companies", app.companyHandler.GetCompanies))
	mux.Get("/companies/:code", handle("get_company", app.companyHandler.GetCompanyByCode))
	mux.Post("/companies", handle("create_company", app.companyHandler.CreateCompany))
	mux.Put("/companies/:code", handle("update_company", app.companyHandler.UpdateCompany))
	mux.Del("/companies/:code", handle("delete_company", app.companyHandler.DeleteCompany))

	// Invoices
	mux.Get("/invoices", handle("list_invoices", app.invoiceHandler.GetInvoices))
	mux.Get("/invoices/company/:code", handle("list_company_invoices", app.invoiceHandler.GetInvoicesByCompany))
	mux.Get("/invoices/:id", handle("get_invoice", app.invoiceHandler.GetInvoice))
	mux.Post("/invoices", handle("create_invoice", app.invoiceHandler.CreateInvoice))
	mux.Put("/invoices/:id", handle("update_invoice", app.invoiceHandler.UpdateInvoice))
	mux.Del("/invoices/:id", handle("delete_invoice", app.invoiceHandler.DeleteInvoice))

	// Operations
	mux.Get("/health", handle("health", app.healthHandler.Health))
	mux.Get("/metrics", alice.New(app.requestID, app.recoverPanic).Then(app.metrics.Handler()))

	// Anything else, including a known path with the wrong method.
	mux.NotFound = standardMiddleware.ThenFunc(app.notFound)

	return mux
}
