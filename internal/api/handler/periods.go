package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jmpark86/solvency-monitor-api/internal/usecases/charting"
	"github.com/jmpark86/solvency-monitor-api/pkg/apiErrors"
	"github.com/jmpark86/solvency-monitor-api/pkg/log"
)

// GetAvailablePeriods returns the reporting periods present in the capital
// cache, for populating range selectors.
func GetAvailablePeriods(service charting.Charter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("periods: listing available periods")

		availablePeriods, err := service.GetAvailablePeriods()
		if err != nil {
			logger.WithError(err).Error("periods: error listing available periods")
			apiErrors.WriteError(w, apiErrors.ErrCacheUnavailable, "Period cache unavailable", nil)
			return
		}

		logger.WithFields(log.Fields{
			"total_periods": len(availablePeriods.Periods),
			"years":         availablePeriods.Years,
			"months":        availablePeriods.Months,
		}).Info("periods: available periods retrieved successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(availablePeriods); err != nil {
			logger.WithError(err).Error("periods: error encoding response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response", nil)
		}
	})
}
