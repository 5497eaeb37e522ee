package repository

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/jmpark86/solvency-monitor-api/infrastructure/database/postgres"
	"github.com/jmpark86/solvency-monitor-api/internal/domain"
)

const (
	capitalRecordsTable = "capital_records cr"
)

// CapitalRecordRepository is the period cache: the single source of truth for
// capital metrics once a (company, period) key has been fetched. Entries are
// append-only; SaveOrUpdate treats later writes as corrections.
type CapitalRecordRepository interface {
	Has(companyID string, period domain.Period) (bool, error)
	GetRange(from, to domain.Period, companyIDs []string) ([]*domain.CapitalRecord, error)
	SaveOrUpdate(record *domain.CapitalRecord) error
	GetAllPeriods() ([]string, error)
}

type capitalRecordRepository struct {
	conn *postgres.Connection
}

func NewCapitalRecordRepository(conn *postgres.Connection) CapitalRecordRepository {
	return &capitalRecordRepository{
		conn: conn,
	}
}

// Has reports whether a cache entry exists for the key. No side effects.
func (r *capitalRecordRepository) Has(companyID string, period domain.Period) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(capitalRecordsTable).
		Where(squirrel.Eq{"cr.company_id": companyID, "cr.period": period.String()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building query: %w", err)
	}

	var one int
	err = r.conn.QueryRow(query, args...).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, cacheUnavailable(err, "error checking cache entry")
	}

	return true, nil
}

// GetRange returns all cached records whose period falls in the inclusive
// range, ordered by period ascending then company_id. Missing periods are not
// fabricated.
func (r *capitalRecordRepository) GetRange(from, to domain.Period, companyIDs []string) ([]*domain.CapitalRecord, error) {
	queryBuilder := squirrel.
		Select("cr.id, cr.company_id, cr.period, cr.available_capital, cr.required_capital, cr.created_at, cr.updated_at").
		From(capitalRecordsTable).
		Where(squirrel.GtOrEq{"cr.period": from.String()}).
		Where(squirrel.LtOrEq{"cr.period": to.String()}).
		OrderBy("cr.period ASC", "cr.company_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(companyIDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"cr.company_id": companyIDs})
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
		return nil, cacheUnavailable(err, "error querying capital records")
	}
	defer rows.Close()

	records := make([]*domain.CapitalRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning capital record: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, cacheUnavailable(err, "error iterating capital records")
	}

	return records, nil
}

// SaveOrUpdate upserts by (company_id, period). Idempotent: re-writing an
// existing key overwrites it without error.
func (r *capitalRecordRepository) SaveOrUpdate(record *domain.CapitalRecord) error {
	query := squirrel.StatementBuilder.
		Insert("capital_records").
		Columns("company_id", "period", "available_capital", "required_capital").
		Values(
			record.CompanyID,
			record.Period.String(),
			record.AvailableCapital,
			record.RequiredCapital,
		).
		Suffix(`
			ON CONFLICT (company_id, period) DO UPDATE SET
				available_capital = EXCLUDED.available_capital,
				required_capital = EXCLUDED.required_capital,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return cacheUnavailable(err, "error upserting capital record")
	}

	return nil
}

// GetAllPeriods returns the distinct periods present in the cache, ascending.
func (r *capitalRecordRepository) GetAllPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT period").
		From("capital_records").
		OrderBy("period ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, cacheUnavailable(err, "error querying periods")
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("error scanning period: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, cacheUnavailable(err, "error iterating periods")
	}

	return periods, nil
}

func (r *capitalRecordRepository) scanRecord(rows *sql.Rows) (*domain.CapitalRecord, error) {
	record := &domain.CapitalRecord{}

	err := rows.Scan(
		&record.ID,
		&record.CompanyID,
		&record.Period,
		&record.AvailableCapital,
		&record.RequiredCapital,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// cacheUnavailable maps a storage failure onto domain.ErrCacheUnavailable so
// callers can recognize it with errors.Is and abort the request. The original
// driver error stays in the message; pq error codes are included when present.
func cacheUnavailable(err error, msg string) error {
	if err == driver.ErrBadConn {
		return errors.Wrapf(domain.ErrCacheUnavailable, "%s: bad connection", msg)
	}
	if pqErr, ok := err.(*pq.Error); ok {
		return errors.Wrapf(domain.ErrCacheUnavailable, "%s: %v (code: %s)", msg, pqErr, pqErr.Code)
	}
	return errors.Wrapf(domain.ErrCacheUnavailable, "%s: %v", msg, err)
}
