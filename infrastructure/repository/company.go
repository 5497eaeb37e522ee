package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/jmpark86/solvency-monitor-api/infrastructure/database/postgres"
	"github.com/jmpark86/solvency-monitor-api/internal/domain"
	"github.com/jmpark86/solvency-monitor-api/pkg/utils"
)

const (
	companiesTable = "companies c"
)

// CompanyRepository is the local directory of insurance companies synced from
// the statistics API.
type CompanyRepository interface {
	GetCompanyByID(companyID string) (*domain.Company, error)
	GetCompanyByExternalID(externalID string) (*domain.Company, error)
	ListCompanies(availableStatus []domain.CompanyStatus) ([]*domain.Company, error)
	SaveOrUpdate(companies []*domain.Company) (int, error)
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

func (r *companyRepository) GetCompanyByID(companyID string) (*domain.Company, error) {
	return r.getCompany(squirrel.Eq{"c.id": companyID})
}

func (r *companyRepository) GetCompanyByExternalID(externalID string) (*domain.Company, error) {
	return r.getCompany(squirrel.Eq{"c.external_id": externalID})
}

func (r *companyRepository) getCompany(whereClause map[string]interface{}) (*domain.Company, error) {
	query, args, err := squirrel.
		Select("c.id, c.external_id, c.name, c.sector, c.status, c.created_at, c.updated_at").
		From(companiesTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	company := &domain.Company{}
	err = row.Scan(
		&company.ID,
		&company.ExternalID,
		&company.Name,
		&company.Sector,
		&company.Status,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning company: %w", err)
	}

	return company, nil
}

func (r *companyRepository) ListCompanies(availableStatus []domain.CompanyStatus) ([]*domain.Company, error) {
	queryBuilder := squirrel.
		Select("c.id, c.external_id, c.name, c.sector, c.status, c.created_at, c.updated_at").
		From(companiesTable).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.status": availableStatus})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "error querying companies")
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company := &domain.Company{}
		err := rows.Scan(
			&company.ID,
			&company.ExternalID,
			&company.Name,
			&company.Sector,
			&company.Status,
			&company.CreatedAt,
			&company.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning company: %w", err)
		}
		companies = append(companies, company)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating companies")
	}

	return companies, nil
}

// SaveOrUpdate upserts the synced directory by external_id, assigning a short
// internal ID to companies seen for the first time. Returns how many rows
// were written.
func (r *companyRepository) SaveOrUpdate(companies []*domain.Company) (int, error) {
	written := 0

	for _, company := range companies {
		id, err := utils.GenerateID()
		if err != nil {
			return written, errors.Wrap(err, "error generating company ID")
		}

		query := squirrel.StatementBuilder.
			Insert("companies").
			Columns("id", "external_id", "name", "sector", "status").
			Values(id, company.ExternalID, company.Name, company.Sector, company.Status).
			Suffix(`
				ON CONFLICT (external_id) DO UPDATE SET
					name = EXCLUDED.name,
					sector = EXCLUDED.sector,
					updated_at = NOW()
			`).
			PlaceholderFormat(squirrel.Dollar)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return written, fmt.Errorf("error building query: %w", err)
		}

		if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
			return written, errors.Wrapf(err, "error upserting company %s", company.ExternalID)
		}
		written++
	}

	return written, nil
}
