package services

import (
	"context"
	"errors"
	"fmt"

	"biztime/internal/database"
	"biztime/internal/models"
)

// CompanyStore is the persistence contract CompanyService relies on.
type CompanyStore interface {
	GetCompanies(ctx context.Context) ([]models.Company, error)
	GetCompanyByCode(ctx context.Context, code string) (models.Company, error)
	CreateCompany(ctx context.Context, in models.CompanyInput) (models.Company, error)
	UpdateCompany(ctx context.Context, code string, in models.CompanyInput) (models.Company, error)
	DeleteCompany(ctx context.Context, code string) (models.Company, error)
}

type CompanyService struct {
	CompanyRepo CompanyStore
}

func companyNotFound(err error) error {
	if errors.Is(err, models.ErrNoRecord) {
		return fmt.Errorf("%w: %w", models.ErrCompanyNotFound, err)
	}
	return err
}

func (s *CompanyService) GetCompanies(ctx context.Context) ([]models.Company, error) {
	return s.CompanyRepo.GetCompanies(ctx)
}

func (s *CompanyService) GetCompanyByCode(ctx context.Context, code string) (models.Company, error) {
	c, err := s.CompanyRepo.GetCompanyByCode(ctx, code)
	return c, companyNotFound(err)
}

// CreateCompany inserts a company. Reusing an existing code yields
// models.ErrDuplicateCompany.
func (s *CompanyService) CreateCompany(ctx context.Context, in models.CompanyInput) (models.Company, error) {
	c, err := s.CompanyRepo.CreateCompany(ctx, in)
	if database.IsUniqueViolation(err) {
		return models.Company{}, fmt.Errorf("%w: %w", models.ErrDuplicateCompany, err)
	}
	return c, err
}

func (s *CompanyService) UpdateCompany(ctx context.Context, code string, in models.CompanyInput) (models.Company, error) {
	c, err := s.CompanyRepo.UpdateCompany(ctx, code, in)
	return c, companyNotFound(err)
}

func (s *CompanyService) DeleteCompany(ctx context.Context, code string) (models.Company, error) {
	c, err := s.CompanyRepo.DeleteCompany(ctx, code)
	return c, companyNotFound(err)
}
