package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"carbazaar-api/internal/model"
)

const (
	brandsPath   = "/api/brands"
	modelsPath   = "/api/models"
	variantsPath = "/api/variants"
)

// CatalogClient reads the remote catalog service. All three collections are
// plain JSON arrays behind GET endpoints; anything other than a 2xx response
// is a terminal failure for the current resolution attempt. There is no
// automatic retry: failures surface to the caller for a user-initiated
// retry, never a silent loop.
type CatalogClient struct {
	origin     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewCatalogClient creates a client for the catalog at origin
// (e.g. "http://localhost:1337").
func NewCatalogClient(origin string, requestsPerSecond float64, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		origin:     strings.TrimRight(origin, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// Origin returns the configured catalog origin.
func (c *CatalogClient) Origin() string {
	return c.origin
}

// Brands fetches the full brand collection.
func (c *CatalogClient) Brands(ctx context.Context) ([]model.Brand, error) {
	var brands []model.Brand
	if err := c.get(ctx, brandsPath, nil, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// Models fetches the models belonging to one brand.
func (c *CatalogClient) Models(ctx context.Context, brandID string) ([]model.CarModel, error) {
	q := url.Values{"brandId": {brandID}}
	var models []model.CarModel
	if err := c.get(ctx, modelsPath, q, &models); err != nil {
		return nil, err
	}
	return models, nil
}

// Variants fetches the variants belonging to one model.
func (c *CatalogClient) Variants(ctx context.Context, modelID string) ([]model.Variant, error) {
	q := url.Values{"modelId": {modelID}}
	var variants []model.Variant
	if err := c.get(ctx, variantsPath, q, &variants); err != nil {
		return nil, err
	}
	return variants, nil
}

// Ping checks that the catalog answers at all, for health reporting.
func (c *CatalogClient) Ping(ctx context.Context) error {
	var brands []model.Brand
	return c.get(ctx, brandsPath, nil, &brands)
}

func (c *CatalogClient) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.origin + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("fetch %s: status %d", path, resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
