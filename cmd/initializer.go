package main

import (
	"context"
	"log/slog"

	"biztime/internal/database"
	"biztime/internal/handlers"
	"biztime/internal/metrics"
	"biztime/internal/repositories"
	"biztime/internal/services"
	"biztime/internal/timeutil"
)

type dataStore interface {
	database.TxQuerier
	Ping(ctx context.Context) error
}

type application struct {
	logger    *slog.Logger
	metrics   *metrics.Metrics
	responder handlers.Responder

	companyHandler *handlers.CompanyHandler
	invoiceHandler *handlers.InvoiceHandler
	healthHandler  *handlers.HealthHandler
}

func initializeApp(db dataStore, logger *slog.Logger, clock *timeutil.Clock, m *metrics.Metrics) *application {
	responder := handlers.Responder{Logger: logger}

	// Repositories
	companyRepo := &repositories.CompanyRepository{DB: db}
	invoiceRepo := &repositories.InvoiceRepository{DB: db}

	// Services
	companyService := &services.CompanyService{CompanyRepo: companyRepo}
	invoiceService := &services.InvoiceService{InvoiceRepo: invoiceRepo, Clock: clock}

	return &application{
		logger:    logger,
		metrics:   m,
		responder: responder,

		companyHandler: &handlers.CompanyHandler{Service: companyService, Responder: responder},
		invoiceHandler: &handlers.InvoiceHandler{Service: invoiceService, Responder: responder},
		healthHandler:  &handlers.HealthHandler{DB: db, Timeout: healthTimeout, Responder: responder},
	}
}
