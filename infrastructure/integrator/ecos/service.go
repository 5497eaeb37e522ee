package ecos

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/ecos/ecosclient"
	"github.com/jmpark86/solvency-monitor-api/internal/config"
	"github.com/jmpark86/solvency-monitor-api/internal/domain"
)

type ECOSIntegrator interface {
	GetYieldSeries(from, to time.Time) ([]domain.RateRecord, error)
}

type ECOSService struct {
	cfg    *config.Config
	Client ecosclient.Client
}

func New(cfg *config.Config, client ecosclient.Client) ECOSIntegrator {
	return &ECOSService{
		cfg:    cfg,
		Client: client,
	}
}

// GetYieldSeries fetches benchmark yield observations over an inclusive date
// range, sorted ascending by observation date. Rows with unparsable dates or
// values are skipped with a warning.
func (s *ECOSService) GetYieldSeries(from, to time.Time) ([]domain.RateRecord, error) {
	rows, err := s.Client.GetStatisticSearch(from, to)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"from":  from.Format(time.DateOnly),
			"to":    to.Format(time.DateOnly),
			"error": err.Error(),
		}).Error("ecos: failed to get yield statistics from API")
		return nil, err
	}

	layout := timeLayoutForCycle(s.cfg.ECOS.Cycle)

	records := make([]domain.RateRecord, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(layout, row.Time)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"time_value": row.Time,
				"error":      err.Error(),
			}).Warn("ecos: error converting observation date")
			continue
		}

		yield, err := decimal.NewFromString(row.DataValue)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"data_value": row.DataValue,
				"error":      err.Error(),
			}).Warn("ecos: error converting observation value to decimal")
			continue
		}

		records = append(records, domain.RateRecord{
			Date:  date,
			Yield: yield,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	logrus.WithFields(logrus.Fields{
		"from":               from.Format(time.DateOnly),
		"to":                 to.Format(time.DateOnly),
		"total_observations": len(records),
	}).Debug("ecos: successfully fetched yield series")

	return records, nil
}

func timeLayoutForCycle(cycle string) string {
	switch cycle {
	case "M":
		return "200601"
	case "A":
		return "2006"
	default:
		return "20060102"
	}
}
