package fssclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"

	fssdomain "github.com/jmpark86/solvency-monitor-api/infrastructure/integrator/fss/domain"
)

// GetStatistics fetches the rows of one statement account for a company over
// an inclusive period range. Quarterly statements only carry rows for the
// quarter-end months inside the range.
func (c *FSSClient) GetStatistics(params StatisticsSearchParams) ([]fssdomain.StatisticRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.FSS.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing base URL: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/api/statisticsInfoSearch.json")

	query := endpoint.Query()
	query.Set("lang", "kr")
	query.Set("auth", c.config.FSS.AuthKey)
	query.Set("financeCd", params.FinanceCd)
	query.Set("listNo", params.ListNo)
	query.Set("accountCd", params.AccountCd)
	query.Set("term", c.config.FSS.Term)
	query.Set("startBaseMm", params.From.String())
	query.Set("endBaseMm", params.To.String())
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
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

	var response fssdomain.StatisticsSearchResponse
	if err := jsoniter.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	if !response.Result.IsSuccess() {
		return nil, fmt.Errorf(
			"statistics search failed with code %s: %s",
			response.Result.ErrCd, response.Result.ErrMsg,
		)
	}

	return response.Result.List, nil
}
