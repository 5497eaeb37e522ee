package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jmpark86/solvency-monitor-api/internal/domain"
	"github.com/jmpark86/solvency-monitor-api/internal/usecases/company"
	"github.com/jmpark86/solvency-monitor-api/pkg/apiErrors"
)

func CompanyList(service company.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companies, err := service.ListCompanies()
		if err != nil {
			logrus.Error("Error listing companies:", err)

			if errors.Is(err, domain.ErrCacheUnavailable) {
				apiErrors.WriteError(w, apiErrors.ErrCacheUnavailable, "Company directory unavailable", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error querying company directory", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(companies); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response", nil)
		}
	})
}

func SyncCompanies(service company.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncCompanies")

		resp, err := service.SyncCompanies()
		if err != nil {
			logrus.Error("Error syncing companies:", err)

			switch {
			case errors.Is(err, domain.ErrCacheUnavailable):
				apiErrors.WriteError(w, apiErrors.ErrCacheUnavailable, "Company directory unavailable", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Error fetching companies from the statistics API", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response", nil)
		}
	})
}
