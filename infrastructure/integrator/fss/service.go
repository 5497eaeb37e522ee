package fss

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	fssdomain "github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/fss/domain"
	"github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/fss/fssclient"
	"github.com/jmpark86/solvency-monitor-api/internal/config"
	"github.com/jmpark86/solvency-monitor-api/internal/domain"
)

type FSSIntegrator interface {
	GetCompanies() ([]*domain.Company, error)
	FetchCapitalRecords(period domain.Period, companies []*domain.Company) ([]*domain.CapitalRecord, error)
}

type FSSService struct {
	cfg    *config.Config
	Client fssclient.Client
}

func New(cfg *config.Config, client fssclient.Client) FSSIntegrator {
	return &FSSService{
		cfg:    cfg,
		Client: client,
	}
}

// GetCompanies lists the registered insurers of both sectors, mapped to the
// local directory model. External IDs are the regulator's finance codes.
func (s *FSSService) GetCompanies() ([]*domain.Company, error) {
	sectors := []domain.CompanySector{domain.CompanySectorLife, domain.CompanySectorNonLife}

	allCompanies := make([]*domain.Company, 0)
	for _, sector := range sectors {
		rows, err := s.Client.GetCompanies(string(sector))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"sector": sector,
				"error":  err.Error(),
			}).Error("fss: failed to get companies from API")
			return nil, err
		}

		for _, row := range rows {
			allCompanies = append(allCompanies, &domain.Company{
				ExternalID: row.FinanceCd,
				Name:       strings.TrimSpace(row.FinanceNm),
				Sector:     sector,
				Status:     domain.CompanyStatusActive,
			})
		}
	}

	logrus.WithField("total_companies", len(allCompanies)).Info("fss: successfully retrieved companies")

	return allCompanies, nil
}

// FetchCapitalRecords fetches the available and required capital statistics
// for one period across the given companies. Companies without published rows
// for the period are skipped with a warning; a transport or API failure, or a
// value that cannot be parsed, aborts the whole period.
func (s *FSSService) FetchCapitalRecords(period domain.Period, companies []*domain.Company) ([]*domain.CapitalRecord, error) {
	records := make([]*domain.CapitalRecord, 0, len(companies))

	for _, company := range companies {
		listNo := s.listNoFor(company.Sector)

		available, found, err := s.fetchStatistic(company, listNo, s.cfg.FSS.AvailableAccountCd, period)
		if err != nil {
			return nil, &domain.RemoteFetchError{Source: "fss", Period: period, Err: err}
		}
		if !found {
			logrus.WithFields(logrus.Fields{
				"company_id": company.ID,
				"period":     period,
				"account_cd": s.cfg.FSS.AvailableAccountCd,
			}).Warn("fss: no statistic rows published for company in period")
			continue
		}

		required, found, err := s.fetchStatistic(company, listNo, s.cfg.FSS.RequiredAccountCd, period)
		if err != nil {
			return nil, &domain.RemoteFetchError{Source: "fss", Period: period, Err: err}
		}
		if !found {
			logrus.WithFields(logrus.Fields{
				"company_id": company.ID,
				"period":     period,
				"account_cd": s.cfg.FSS.RequiredAccountCd,
			}).Warn("fss: no statistic rows published for company in period")
			continue
		}

		records = append(records, &domain.CapitalRecord{
			CompanyID:        company.ID,
			Period:           period,
			AvailableCapital: available,
			RequiredCapital:  required,
		})
	}

	logrus.WithFields(logrus.Fields{
		"period":        period,
		"total_records": len(records),
	}).Debug("fss: successfully fetched capital records for period")

	return records, nil
}

func (s *FSSService) fetchStatistic(
	company *domain.Company,
	listNo, accountCd string,
	period domain.Period,
) (decimal.Decimal, bool, error) {
	rows, err := s.Client.GetStatistics(fssclient.StatisticsSearchParams{
		FinanceCd: company.ExternalID,
		ListNo:    listNo,
		AccountCd: accountCd,
		From:      period,
		To:        period,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id": company.ID,
			"finance_cd": company.ExternalID,
			"account_cd": accountCd,
			"period":     period,
			"error":      err.Error(),
		}).Error("fss: failed to get statistics from API")
		return decimal.Zero, false, err
	}

	row, ok := rowForPeriod(rows, period)
	if !ok {
		return decimal.Zero, false, nil
	}

	value, err := parseAmount(row.RawValue())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id": company.ID,
			"account_cd": accountCd,
			"period":     period,
			"raw_value":  row.RawValue(),
			"error":      err.Error(),
		}).Error("fss: malformed statistic value in API response")
		return decimal.Zero, false, fmt.Errorf(
			"malformed statistic value %q for account %s: %w",
			row.RawValue(), accountCd, err,
		)
	}

	return value, true, nil
}

func (s *FSSService) listNoFor(sector domain.CompanySector) string {
	if sector == domain.CompanySectorLife {
		return s.cfg.FSS.LifeListNo
	}
	return s.cfg.FSS.NonLifeListNo
}

func rowForPeriod(rows []fssdomain.StatisticRow, period domain.Period) (fssdomain.StatisticRow, bool) {
	for _, row := range rows {
		if row.BaseMonth == period.String() {
			return row, true
		}
	}
	return fssdomain.StatisticRow{}, false
}

// parseAmount converts a statistic value to a decimal. Values arrive with
// thousands separators, e.g. "12,345,678".
func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	return decimal.NewFromString(cleaned)
}
