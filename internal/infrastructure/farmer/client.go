package farmer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/dto"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/jobs"
	"github.com/DiksySingh/InventorySystem2-sub002/pkg/config"
)

var _ jobs.FarmerDetailClient = (*Client)(nil)

// Client fetches farmer details from the external enrichment service.
// Every lookup runs under the configured budget (5s by default); callers
// treat failures as a degraded nil block, never as an error of their own.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds the enrichment client.
func NewClient(cfg config.FarmerConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// GetFarmer resolves a farmer by id. Non-200 responses and transport
// failures surface as errors for the caller to log and degrade on.
func (c *Client) GetFarmer(ctx context.Context, farmerID string) (*dto.FarmerDetailDTO, error) {
	endpoint := fmt.Sprintf("%s/farmers/%s", c.baseURL, url.PathEscape(farmerID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build farmer request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("farmer service: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("farmer service: status %d", resp.StatusCode)
	}
	var detail dto.FarmerDetailDTO
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, fmt.Errorf("decode farmer response: %w", err)
	}
	return &detail, nil
}
