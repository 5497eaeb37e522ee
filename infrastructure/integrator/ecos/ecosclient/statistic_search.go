package ecosclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	ecosdomain "github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/ecos/domain"
)

// GetStatisticSearch fetches the configured yield statistic over an inclusive
// date range. The endpoint encodes all parameters in the URL path. An
// "INFO-200" result means no observations in the range and yields an empty
// slice.
func (c *ECOSClient) GetStatisticSearch(from, to time.Time) ([]ecosdomain.StatisticRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	layout := timeLayoutForCycle(c.config.ECOS.Cycle)

	endpoint := fmt.Sprintf(
		"%s/StatisticSearch/%s/json/kr/1/%d/%s/%s/%s/%s/%s",
		c.config.ECOS.BaseURL,
		c.config.ECOS.AuthKey,
		c.config.ECOS.PageSize,
		c.config.ECOS.StatCode,
		c.config.ECOS.Cycle,
		from.Format(layout),
		to.Format(layout),
		c.config.ECOS.ItemCode,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	// Failures come back as a RESULT envelope instead of the statistic payload.
	var envelope ecosdomain.ResultEnvelope
	if err := jsoniter.Unmarshal(body, &envelope); err == nil && envelope.Result != nil {
		if envelope.Result.Code == ecosdomain.NoDataCode {
			return []ecosdomain.StatisticRow{}, nil
		}
		return nil, fmt.Errorf(
			"statistic search failed with code %s: %s",
			envelope.Result.Code, envelope.Result.Message,
		)
	}

	var response ecosdomain.StatisticSearchResponse
	if err := jsoniter.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	return response.StatisticSearch.Row, nil
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
