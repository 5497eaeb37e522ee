package ecosclient

import (
	"net/http"
	"time"

	ecosdomain "github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/ecos/domain"
	"github.com/jmpark86/solvency-monitor-api/internal/config"
)

type Client interface {
	GetStatisticSearch(from, to time.Time) ([]ecosdomain.StatisticRow, error)
}

type ECOSClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ECOSClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
