package handler

import (
	"net/http"

	"github.com/jmpark86/solvency-monitor-api/internal/api/handler/router"
	"github.com/jmpark86/solvency-monitor-api/internal/usecases/charting"
	"github.com/jmpark86/solvency-monitor-api/internal/usecases/company"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Companies(service company.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/companies",
			Method:  http.MethodGet,
			Handler: CompanyList(service),
		},
		{
			Path:    "/v1/companies/sync",
			Method:  http.MethodGet,
			Handler: SyncCompanies(service),
		},
	}
}

func Charts(service charting.Charter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/companies/:id/solvency/chart",
			Method:  http.MethodGet,
			Handler: GetSolvencyChart(service),
		},
		{
			Path:    "/v1/solvency/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
