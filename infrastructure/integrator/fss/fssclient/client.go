package fssclient

import (
	"net/http"
	"time"

	fssdomain "github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/fss/domain"
	"github.com/jmpark86/solvency-monitor-api/internal/config"
	"github.com/jmpark86/solvency-monitor-api/internal/domain"
)

type Client interface {
	GetCompanies(partDiv string) ([]fssdomain.Company, error)
	GetStatistics(params StatisticsSearchParams) ([]fssdomain.StatisticRow, error)
}

type FSSClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &FSSClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

type StatisticsSearchParams struct {
	FinanceCd string
	ListNo    string
	AccountCd string
	From      domain.Period
	To        domain.Period
}
