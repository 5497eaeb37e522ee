package acquiring

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/fss"
	"github.com/jmpark86/solvency-monitor-api/infrastructure/repository"
	"github.com/jmpark86/solvency-monitor-api/internal/domain"
)

type AcquiringService struct {
	capitalRecordRepository repository.CapitalRecordRepository
	metricSource            fss.FSSIntegrator
}

func New(
	capitalRecordRepository repository.CapitalRecordRepository,
	metricSource fss.FSSIntegrator,
) Acquirer {
	return &AcquiringService{
		capitalRecordRepository: capitalRecordRepository,
		metricSource:            metricSource,
	}
}

// EnsurePeriods walks the range oldest to newest. One read against the cache
// decides which (company, period) keys are missing; each period with missing
// keys triggers one remote fetch. A failed fetch is recorded and the walk
// continues. Cache errors abort the whole run: without the cache there is no
// way to know what was already fetched.
func (s *AcquiringService) EnsurePeriods(from, to domain.Period, companies []*domain.Company) (*domain.EnsureResult, error) {
	result := &domain.EnsureResult{
		Fetched: make([]domain.Period, 0),
		Failed:  make([]domain.PeriodFailure, 0),
	}

	periods := domain.PeriodsBetween(from, to)
	if len(periods) == 0 || len(companies) == 0 {
		return result, nil
	}

	companyIDs := make([]string, 0, len(companies))
	for _, company := range companies {
		companyIDs = append(companyIDs, company.ID)
	}

	cached, err := s.capitalRecordRepository.GetRange(from, to, companyIDs)
	if err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(cached))
	for _, record := range cached {
		present[cacheKey(record.CompanyID, record.Period)] = struct{}{}
	}

	for _, period := range periods {
		missing := make([]*domain.Company, 0)
		for _, company := range companies {
			if _, ok := present[cacheKey(company.ID, period)]; !ok {
				missing = append(missing, company)
			}
		}

		if len(missing) == 0 {
			continue
		}

		logrus.WithFields(logrus.Fields{
			"period":            period,
			"missing_companies": len(missing),
		}).Debug("acquisition: fetching period from remote source")

		records, err := s.metricSource.FetchCapitalRecords(period, missing)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"period": period,
				"error":  err.Error(),
			}).Warn("acquisition: period fetch failed, continuing with remaining periods")

			result.Failed = append(result.Failed, domain.PeriodFailure{
				Period: period,
				Error:  err.Error(),
			})
			continue
		}

		for _, record := range records {
			if err := s.capitalRecordRepository.SaveOrUpdate(record); err != nil {
				return nil, err
			}
		}

		result.Fetched = append(result.Fetched, period)
	}

	logrus.WithFields(logrus.Fields{
		"from":    from,
		"to":      to,
		"fetched": len(result.Fetched),
		"failed":  len(result.Failed),
	}).Info("acquisition: ensure run finished")

	return result, nil
}

func cacheKey(companyID string, period domain.Period) string {
	return fmt.Sprintf("%s|%s", companyID, period)
}
