package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"biztime/internal/models"
	"biztime/internal/services"
)

type InvoiceHandler struct {
	Service *services.InvoiceService
	Responder
}

func (h *InvoiceHandler) invoiceError(w http.ResponseWriter, r *http.Request, id int64, err error) {
	switch {
	case errors.Is(err, models.ErrInvoiceNotFound):
		err = NotFound(fmt.Sprintf("No such invoice: %d", id))
	case errors.Is(err, models.ErrNoCompanyInvoices):
		err = NotFound("No invoices found for the given company code")
	}
	h.Error(w, r, err)
}

func (h *InvoiceHandler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Service.GetInvoices(r.Context())
	if err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, r, http.StatusOK, map[string]any{"invoices": invoices})
}

func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := getIDParam(r, "id")
	if err != nil {
		h.Error(w, r, err)
		return
	}
	invoice, err := h.Service.GetInvoice(r.Context(), id)
	if err != nil {
		h.invoiceError(w, r, id, err)
		return
	}
	h.JSON(w, r, http.StatusOK, map[string]any{"invoice": invoice})
}

func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var in models.NewInvoice
	if err := decodeJSON(r, &in); err != nil {
		h.Error(w, r, err)
		return
	}
	invoice, err := h.Service.CreateInvoice(r.Context(), in)
	if err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, r, http.StatusOK, map[string]any{"invoice": invoice})
}

func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := getIDParam(r, "id")
	if err != nil {
		h.Error(w, r, err)
		return
	}
	var upd models.InvoiceUpdate
	if err := decodeJSON(r, &upd); err != nil {
		h.Error(w, r, err)
		return
	}
	invoice, err := h.Service.UpdateInvoice(r.Context(), id, upd)
	if err != nil {
		h.invoiceError(w, r, id, err)
		return
	}
	h.JSON(w, r, http.StatusOK, map[string]any{"invoice": invoice})
}

func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := getIDParam(r, "id")
	if err != nil {
		h.Error(w, r, err)
		return
	}
	invoice, err := h.Service.DeleteInvoice(r.Context(), id)
	if err != nil {
		h.invoiceError(w, r, id, err)
		return
	}
	h.JSON(w, r, http.StatusOK, map[string]any{"msg": "Deleted", "invoice": invoice.CompCode})
}

// GetInvoicesByCompany answers 404 both for an unknown company and for one
// with no invoices.
func (h *InvoiceHandler) GetInvoicesByCompany(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Service.GetInvoicesByCompany(r.Context(), getParam(r, "code"))
	if err != nil {
		h.invoiceError(w, r, 0, err)
		return
	}
	h.JSON(w, r, http.StatusOK, map[string]any{"invoices": invoices})
}
