package repositories

import (
	"context"
	"fmt"

	"biztime/internal/database"
	"biztime/internal/models"
)

type CompanyRepository struct {
	DB database.Querier
}

func companyFromRow(row database.Row) (models.Company, error) {
	var c models.Company
	var err error
	if c.Code, err = row.String("code"); err != nil {
		return c, err
	}
	if c.Name, err = row.String("name"); err != nil {
		return c, err
	}
	if c.Description, err = row.NullString("description"); err != nil {
		return c, err
	}
	return c, nil
}

func (r *CompanyRepository) GetCompanies(ctx context.Context) ([]models.Company, error) {
	res, err := r.DB.Query(ctx, `SELECT code, name, description FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("select companies: %w", err)
	}

	companies := make([]models.Company, 0, res.RowCount)
	for _, row := range res.Rows {
		c, err := companyFromRow(row)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, nil
}

func (r *CompanyRepository) GetCompanyByCode(ctx context.Context, code string) (models.Company, error) {
	res, err := r.DB.Query(ctx, `SELECT code, name, description FROM companies WHERE code = $1`, code)
	if err != nil {
		return models.Company{}, fmt.Errorf("select company %q: %w", code, err)
	}
	row, ok := res.First()
	if !ok {
		return models.Company{}, fmt.Errorf("company %q: %w", code, models.ErrNoRecord)
	}
	return companyFromRow(row)
}

func (r *CompanyRepository) CreateCompany(ctx context.Context, in models.CompanyInput) (models.Company, error) {
	query := `INSERT INTO companies (code, name, description) VALUES ($1, $2, $3) RETURNING code, name, description`
	res, err := r.DB.Query(ctx, query, in.Code, in.Name, in.Description)
	if err != nil {
		return models.Company{}, fmt.Errorf("insert company: %w", err)
	}
	row, ok := res.First()
	if !ok {
		return models.Company{}, fmt.Errorf("insert company: %w", models.ErrNoRecord)
	}
	return companyFromRow(row)
}

// UpdateCompany overwrites name and description. A nil field is written as NULL.
func (r *CompanyRepository) UpdateCompany(ctx context.Context, code string, in models.CompanyInput) (models.Company, error) {
	query := `UPDATE companies SET name = $1, description = $2 WHERE code = $3 RETURNING code, name, description`
	res, err := r.DB.Query(ctx, query, in.Name, in.Description, code)
	if err != nil {
		return models.Company{}, fmt.Errorf("update company %q: %w", code, err)
	}
	row, ok := res.First()
	if !ok {
		return models.Company{}, fmt.Errorf("company %q: %w", code, models.ErrNoRecord)
	}
	return companyFromRow(row)
}

// DeleteCompany removes the company and returns its code and name.
func (r *CompanyRepository) DeleteCompany(ctx context.Context, code string) (models.Company, error) {
	res, err := r.DB.Query(ctx, `DELETE FROM companies WHERE code = $1 RETURNING code, name`, code)
	if err != nil {
		return models.Company{}, fmt.Errorf("delete company %q: %w", code, err)
	}
	row, ok := res.First()
	if !ok {
		return models.Company{}, fmt.Errorf("company %q: %w", code, models.ErrNoRecord)
	}

	var c models.Company
	if c.Code, err = row.String("code"); err != nil {
		return models.Company{}, err
	}
	if c.Name, err = row.String("name"); err != nil {
		return models.Company{}, err
	}
	return c, nil
}
