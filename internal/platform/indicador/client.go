package indicador

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
)

// Client fetches economic indicators from the mindicador.cl API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ portssvc.UFSource = (*Client)(nil)

// NewClient constructs a new client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type ufSeriesResponse struct {
	Serie []struct {
		Fecha time.Time       `json:"fecha"`
		Valor decimal.Decimal `json:"valor"`
	} `json:"serie"`
}

// FetchUF returns the latest published UF value. The API returns the series
// newest first, so the first entry is the current one.
func (c *Client) FetchUF(ctx context.Context) (*domain.UFValue, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/uf", c.baseURL), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build uf request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch uf value: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return nil, apperrors.NewAppError(resp.StatusCode, "indicator service returned an error", nil)
	}

	var series ufSeriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&series); err != nil {
		return nil, fmt.Errorf("failed to decode uf response: %w", err)
	}
	if len(series.Serie) == 0 {
		return nil, fmt.Errorf("uf response contained no series entries")
	}

	latest := series.Serie[0]
	return &domain.UFValue{
		Value:     latest.Valor,
		Date:      latest.Fecha,
		FetchedAt: time.Now().UTC(),
	}, nil
}
