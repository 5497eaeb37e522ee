package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/jmpark86/solvency-monitor-api/internal/scheduler"
	"github.com/jmpark86/solvency-monitor-api/pkg/apiErrors"
)

const (
	CronJobTypeBackfill = "backfill"
	CronJobTypeAll      = "all"
)

// CronJobServices holds the schedulers that can be triggered manually.
type CronJobServices struct {
	CapitalBackfillSyncService *scheduler.CapitalBackfillSyncService
}

// RunCronJob triggers a scheduled job outside its cron window.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeBackfill, CronJobTypeAll:
			if services.CapitalBackfillSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Capital backfill service not available", nil)
				return
			}
			services.CapitalBackfillSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: backfill, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job started successfully",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus returns the state of the scheduled jobs.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"backfill": services.CapitalBackfillSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
