package charting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/ecos"
	"github.com/jmpark86/solvency-monitor-api/infrastructure/repository"
	"github.com/jmpark86/solvency-monitor-api/internal/config"
	"github.com/jmpark86/solvency-monitor-api/internal/domain"
	"github.com/jmpark86/solvency-monitor-api/internal/usecases/acquiring"
)

type ChartService struct {
	cfg                     *config.Config
	companyRepository       repository.CompanyRepository
	capitalRecordRepository repository.CapitalRecordRepository
	acquirer                acquiring.Acquirer
	rateSource              ecos.ECOSIntegrator
}

func New(
	cfg *config.Config,
	companyRepository repository.CompanyRepository,
	capitalRecordRepository repository.CapitalRecordRepository,
	acquirer acquiring.Acquirer,
	rateSource ecos.ECOSIntegrator,
) Charter {
	return &ChartService{
		cfg:                     cfg,
		companyRepository:       companyRepository,
		capitalRecordRepository: capitalRecordRepository,
		acquirer:                acquirer,
		rateSource:              rateSource,
	}
}

// BuildChart ensures cache coverage for the range, reads the cached records
// back, aligns them with the benchmark yield and computes the axis windows.
// A rate source failure degrades the chart to ratios only; it never fails the
// request.
func (s *ChartService) BuildChart(companyID string, from, to domain.Period) (*domain.ChartResponse, error) {
	company, err := s.companyRepository.GetCompanyByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	ensured, err := s.acquirer.EnsurePeriods(from, to, []*domain.Company{company})
	if err != nil {
		return nil, err
	}

	records, err := s.capitalRecordRepository.GetRange(from, to, []string{company.ID})
	if err != nil {
		return nil, err
	}

	rates := s.fetchRates(records)

	series, warnings, err := Merge(records, rates)
	if err != nil {
		return nil, err
	}

	ratios := make([]decimal.Decimal, 0, len(series))
	rateValues := make([]decimal.Decimal, 0, len(series))
	for _, point := range series {
		ratios = append(ratios, point.SolvencyRatio)
		if point.Rate != nil {
			rateValues = append(rateValues, *point.Rate)
		}
	}

	logrus.WithFields(logrus.Fields{
		"company_id": company.ID,
		"from":       from,
		"to":         to,
		"points":     len(series),
		"warnings":   len(warnings),
	}).Debug("charting: built solvency chart")

	return &domain.ChartResponse{
		CompanyID:     company.ID,
		CompanyName:   company.Name,
		From:          from,
		To:            to,
		Series:        series,
		RatioAxis:     ComputeRange(ratios, s.cfg.Chart.PaddingFraction),
		RateAxis:      ComputeRange(rateValues, s.cfg.Chart.PaddingFraction),
		Warnings:      warnings,
		FailedPeriods: ensured.Failed,
	}, nil
}

// fetchRates pulls yield observations covering the span of the cached
// records. Degrades to an empty series on failure.
func (s *ChartService) fetchRates(records []*domain.CapitalRecord) []domain.RateRecord {
	if len(records) == 0 {
		return nil
	}

	from := records[0].Period.Time()
	to := records[len(records)-1].Period.EndDate()

	rates, err := s.rateSource.GetYieldSeries(from, to)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"from":  from.Format(time.DateOnly),
			"to":    to.Format(time.DateOnly),
			"error": err.Error(),
		}).Warn("charting: rate source unavailable, building chart without rates")
		return nil
	}

	return rates
}

// GetAvailablePeriods lists the distinct cached periods with their distinct
// years and months, for populating range selectors.
func (s *ChartService) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	periods, err := s.capitalRecordRepository.GetAllPeriods()
	if err != nil {
		return nil, err
	}

	yearsSeen := make(map[string]bool)
	monthsSeen := make(map[string]bool)
	years := make([]string, 0)
	months := make([]string, 0)

	for _, period := range periods {
		if len(period) != 6 {
			continue
		}

		year, month := period[:4], period[4:]
		if !yearsSeen[year] {
			yearsSeen[year] = true
			years = append(years, year)
		}
		if !monthsSeen[month] {
			monthsSeen[month] = true
			months = append(months, month)
		}
	}

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   years,
		Months:  months,
	}, nil
}
