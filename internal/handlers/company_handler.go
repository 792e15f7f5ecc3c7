package handlers

import (
	"errors"
	"net/http"

	"biztime/internal/models"
	"biztime/internal/services"
)

const msgCompanyNotFound = "No company found with the given code"

type CompanyHandler struct {
	Service *services.CompanyService
	Responder
}

func (h *CompanyHandler) companyError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrCompanyNotFound):
		err = NotFound(msgCompanyNotFound)
	case errors.Is(err, models.ErrDuplicateCompany):
		err = Conflict("Company code already exists")
	}
	h.Error(w, r, err)
}

func (h *CompanyHandler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.Service.GetCompanies(r.Context())
	if err != nil {
		h.companyError(w, r, err)
		return
	}
	h.JSON(w, r, http.StatusOK, map[string]any{"companies": companies})
}

// GetCompanyByCode responds with the matching row wrapped in a one-element
// list.
func (h *CompanyHandler) GetCompanyByCode(w http.ResponseWriter, r *http.Request) {
	company, err := h.Service.GetCompanyByCode(r.Context(), getParam(r, "code"))
	if err != nil {
		h.companyError(w, r, err)
		return
	}
	h.JSON(w, r, http.StatusOK, map[string]any{"company": []models.Company{company}})
}

func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var in models.CompanyInput
	if err := decodeJSON(r, &in); err != nil {
		h.Error(w, r, err)
		return
	}
	company, err := h.Service.CreateCompany(r.Context(), in)
	if err != nil {
		h.companyError(w, r, err)
		return
	}
	h.JSON(w, r, http.StatusCreated, company)
}

func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var in models.CompanyInput
	if err := decodeJSON(r, &in); err != nil {
		h.Error(w, r, err)
		return
	}
	company, err := h.Service.UpdateCompany(r.Context(), getParam(r, "code"), in)
	if err != nil {
		h.companyError(w, r, err)
		return
	}
	h.JSON(w, r, http.StatusOK, company)
}

func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.Service.DeleteCompany(r.Context(), getParam(r, "code"))
	if err != nil {
		h.companyError(w, r, err)
		return
	}
	h.JSON(w, r, http.StatusOK, map[string]any{"msg": "Deleted", "company": company.Name})
}
