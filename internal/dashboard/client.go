// File: internal/dashboard/client.go
package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/AymenS02/united-real-estate/internal/common"
	"github.com/AymenS02/united-real-estate/internal/property"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// APIClient talks to the listings REST API over HTTP.
type APIClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewAPIClient creates a client rooted at baseURL (the /api prefix included).
func NewAPIClient(baseURL string, timeout time.Duration, logger *zap.Logger) *APIClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &APIClient{
		httpClient: client,
		logger:     logger,
	}
}

// ListProperties fetches every listing.
func (c *APIClient) ListProperties(ctx context.Context) ([]property.Listing, error) {
	var listings []property.Listing
	var apiErr common.APIError
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&listings).
		SetError(&apiErr).
		Get("/properties")
	if err != nil {
		return nil, fmt.Errorf("failed to call listings API: %w", err)
	}
	if resp.IsError() {
		return nil, remoteError(resp, &apiErr)
	}
	if listings == nil {
		listings = []property.Listing{}
	}
	return listings, nil
}

// CreateProperty posts a new listing and returns the stored record.
func (c *APIClient) CreateProperty(ctx context.Context, payload property.CreatePropertyRequest) (*property.Listing, error) {
	var created property.CreatePropertyResponse
	var apiErr common.APIError
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&created).
		SetError(&apiErr).
		Post("/properties")
	if err != nil {
		return nil, fmt.Errorf("failed to call listings API: %w", err)
	}
	if resp.IsError() {
		return nil, remoteError(resp, &apiErr)
	}

	c.logger.Debug("Listing created via API", zap.String("listing_id", payload.ListingID))
	return created.Property, nil
}

// PromoteProperty moves a listing to Inventory.
func (c *APIClient) PromoteProperty(ctx context.Context, id string) error {
	var apiErr common.APIError
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetBody(property.UpdatePropertyRequest{Status: statusPtr(property.StatusInventory)}).
		SetError(&apiErr).
		Patch("/properties/{id}")
	if err != nil {
		return fmt.Errorf("failed to call listings API: %w", err)
	}
	if resp.IsError() {
		return remoteError(resp, &apiErr)
	}
	return nil
}

// DeleteProperty removes a listing by its store id.
func (c *APIClient) DeleteProperty(ctx context.Context, id string) error {
	var apiErr common.APIError
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(property.DeletePropertyRequest{ID: id}).
		SetError(&apiErr).
		Delete("/properties")
	if err != nil {
		return fmt.Errorf("failed to call listings API: %w", err)
	}
	if resp.IsError() {
		return remoteError(resp, &apiErr)
	}
	return nil
}

// remoteError turns a non-2xx response into an *common.APIError carrying the
// server's message, which may be empty when the body was not an envelope.
func remoteError(resp *resty.Response, apiErr *common.APIError) error {
	apiErr.StatusCode = resp.StatusCode()
	if apiErr.Code == "" {
		apiErr.Code = http.StatusText(resp.StatusCode())
	}
	return apiErr
}

func statusPtr(s property.Status) *string {
	v := string(s)
	return &v
}
