package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/jmpark86/solvency-monitor-api/internal/domain"
	"github.com/jmpark86/solvency-monitor-api/internal/usecases/charting"
	"github.com/jmpark86/solvency-monitor-api/pkg/apiErrors"
	"github.com/jmpark86/solvency-monitor-api/pkg/log"
)

// GetSolvencyChart returns the merged solvency series for one company over an
// inclusive period range given by the from/to query parameters (YYYYMM).
func GetSolvencyChart(service charting.Charter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if companyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Company ID is required", nil)
			return
		}

		fromParam := r.URL.Query().Get("from")
		toParam := r.URL.Query().Get("to")
		if fromParam == "" || toParam == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Query parameters from and to are required (YYYYMM)", nil)
			return
		}

		from, err := domain.ParsePeriod(fromParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid from period, expected YYYYMM", nil)
			return
		}

		to, err := domain.ParsePeriod(toParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid to period, expected YYYYMM", nil)
			return
		}

		if to.Before(from) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Period from must not be after to", nil)
			return
		}

		logger.WithFields(log.Fields{
			"company_id": companyID,
			"from":       from,
			"to":         to,
		}).Info("chart: building solvency chart")

		response, err := service.BuildChart(companyID, from, to)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"company_id": companyID,
			}).Error("chart: error building solvency chart")

			writeChartError(w, err, companyID)
			return
		}

		logger.WithFields(log.Fields{
			"company_id":     companyID,
			"points":         len(response.Series),
			"warnings":       len(response.Warnings),
			"failed_periods": len(response.FailedPeriods),
		}).Info("chart: solvency chart built successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("chart: error encoding response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response", nil)
		}
	})
}

func writeChartError(w http.ResponseWriter, err error, companyID string) {
	var violation *domain.InvariantViolation

	switch {
	case errors.Is(err, domain.ErrCompanyNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Company not found", map[string]interface{}{
			"company_id": companyID,
		})
	case errors.Is(err, domain.ErrCacheUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrCacheUnavailable, "Period cache unavailable, try again later", nil)
	case errors.As(err, &violation):
		apiErrors.WriteError(w, apiErrors.ErrInvariantViolation, "Cached data is inconsistent", map[string]interface{}{
			"reason": violation.Reason,
		})
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error building solvency chart", nil)
	}
}
