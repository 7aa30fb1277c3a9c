package backstage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/clients"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
)

// BackstageClient implements the clients.BackstageClient interface against the
// Backstage catalog REST API
type BackstageClient struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
}

// NewBackstageClient creates a new catalog client for the given Backstage instance.
// apiToken may be empty when the catalog endpoint allows unauthenticated reads.
func NewBackstageClient(baseURL, apiToken string) clients.BackstageClient {
	return &BackstageClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiToken:   apiToken,
	}
}

// QueryEntities performs a single filtered read against the catalog entities endpoint.
// The filter uses the catalog's native syntax, e.g. "metadata.name=cool-tuna".
func (c *BackstageClient) QueryEntities(ctx context.Context, filter string) ([]models.Entity, error) {
	endpoint := fmt.Sprintf("%s/api/catalog/entities?filter=%s", c.baseURL, url.QueryEscape(filter))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("catalog API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var entities []models.Entity
	if err := json.NewDecoder(resp.Body).Decode(&entities); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return entities, nil
}
