package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/yuvrxj-24/sales-analytics-system/config"
	"github.com/yuvrxj-24/sales-analytics-system/models"
	"github.com/yuvrxj-24/sales-analytics-system/utils"
)

// Client fetches the product catalog from a DummyJSON-style products API.
// The first request discovers the catalog size, then the full set is
// fetched page by page through the worker pool.
type Client struct {
	baseURL  string
	pageSize int
	http     *http.Client
	logger   *utils.Logger
	pool     *utils.WorkerPool
	retry    *utils.RetryConfig
	seen     *utils.IDSet

	mu       sync.Mutex
	products []models.CatalogProduct
}

// New creates a ready-to-use catalog Client.
func New(cfg *config.Config, logger *utils.Logger) *Client {
	return &Client{
		baseURL:  cfg.CatalogBaseURL,
		pageSize: cfg.CatalogPageSize,
		http: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutMs) * time.Millisecond,
		},
		logger: logger,
		pool:   utils.NewWorkerPool(cfg.MaxConcurrency, cfg.RateLimitMs),
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
		seen: utils.NewIDSet(),
	}
}

type productJSON struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

type productsResponse struct {
	Products []productJSON `json:"products"`
	Total    int           `json:"total"`
	Skip     int           `json:"skip"`
	Limit    int           `json:"limit"`
}

// FetchAll retrieves every product in the catalog, sorted by ID. Duplicate
// IDs across pages are dropped.
func (c *Client) FetchAll(ctx context.Context) ([]models.CatalogProduct, error) {
	first, err := c.fetchPage(ctx, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("catalog: discover total: %w", err)
	}
	if first.Total <= 0 {
		return nil, fmt.Errorf("catalog: could not determine total products")
	}

	c.logger.Info("[catalog] Fetching %d products in pages of %d", first.Total, c.pageSize)

	var firstErr error
	var errMu sync.Mutex

	for skip := 0; skip < first.Total; skip += c.pageSize {
		skip := skip
		c.pool.Submit(func() {
			err := c.retry.Do(ctx, fmt.Sprintf("catalog page skip=%d", skip), func() error {
				page, err := c.fetchPage(ctx, skip, c.pageSize)
				if err != nil {
					return err
				}
				c.collect(page.Products)
				return nil
			})
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
			}
		})
	}
	c.pool.Wait()

	if firstErr != nil {
		return nil, fmt.Errorf("catalog: %w", firstErr)
	}

	c.mu.Lock()
	result := make([]models.CatalogProduct, len(c.products))
	copy(result, c.products)
	c.mu.Unlock()

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	c.logger.Info("[catalog] Fetched %d products", len(result))
	return result, nil
}

func (c *Client) fetchPage(ctx context.Context, skip, limit int) (*productsResponse, error) {
	url := fmt.Sprintf("%s?limit=%d&skip=%d", c.baseURL, limit, skip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}

	var page productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return &page, nil
}

func (c *Client) collect(products []productJSON) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range products {
		if !c.seen.Add(p.ID) {
			c.logger.Debug("[catalog] Duplicate product ID skipped: %d", p.ID)
			continue
		}
		c.products = append(c.products, models.CatalogProduct{
			ID:       p.ID,
			Title:    p.Title,
			Category: p.Category,
			Brand:    p.Brand,
			Price:    p.Price,
			Rating:   p.Rating,
		})
	}
}

// BuildMapping indexes catalog products by their numeric ID.
func BuildMapping(products []models.CatalogProduct) map[int]models.CatalogProduct {
	mapping := make(map[int]models.CatalogProduct, len(products))
	for _, p := range products {
		mapping[p.ID] = p
	}
	return mapping
}
