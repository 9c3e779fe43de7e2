package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"product-insights-api/logger"
	"product-insights-api/model"
	"time"

	"github.com/sirupsen/logrus"
)

// IProductRepository defines the contract for loading the full transaction dataset.
type IProductRepository interface {
	FetchAll(ctx context.Context) ([]model.Transaction, error)
}

// HTTPProductRepository reads the dataset from a remote JSON array.
type HTTPProductRepository struct {
	client  *http.Client
	url     string
	timeout time.Duration
}

// NewHTTPProductRepository creates a repository for url. A nil client uses http.DefaultClient.
func NewHTTPProductRepository(client *http.Client, url string, timeout time.Duration) *HTTPProductRepository {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPProductRepository{client: client, url: url, timeout: timeout}
}

// FetchAll downloads and decodes the whole dataset. Failures are logged and returned;
// the caller decides whether to degrade.
func (r *HTTPProductRepository) FetchAll(ctx context.Context) ([]model.Transaction, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"source_url": r.url,
		"timeout":    r.timeout.String(),
	})
	log.Debug("Fetching product transactions from remote source")

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		log.WithError(err).Error("Failed to fetch product transactions")
		return nil, fmt.Errorf("fetch product data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		log.WithField("status_code", resp.StatusCode).Error("Remote source returned a non-success status")
		return nil, fmt.Errorf("fetch product data: unexpected status %d", resp.StatusCode)
	}

	var txs []model.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&txs); err != nil {
		log.WithError(err).Error("Failed to decode product transactions")
		return nil, fmt.Errorf("decode product data: %w", err)
	}

	log.WithField("count", len(txs)).Debug("Fetched product transactions")
	return txs, nil
}
