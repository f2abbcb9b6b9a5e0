package seeder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/okian/berth/pkg/logger"
)

// client wraps http.Client for JSON round trips.
type client struct {
	http *http.Client
}

func newClient(cfg *Config) *client {
	return &client{http: &http.Client{Timeout: cfg.Timeout}}
}

// postJSON posts a JSON body and returns the status code.
func (c *client) postJSON(ctx context.Context, url string, body interface{}) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// getJSON fetches a URL and decodes the JSON body into out.
func (c *client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// checkServiceHealth verifies the service is reachable before seeding.
func checkServiceHealth(ctx context.Context, cfg *Config, c *client) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.BaseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("service unreachable at %s: %w", cfg.BaseURL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

// submitBatch posts items concurrently with a bounded worker pool and
// returns the number of failures. accepted lists the status codes
// counted as success.
func submitBatch[T any](ctx context.Context, cfg *Config, c *client, url string, items []T, accepted map[int]*int64) int64 {
	itemChan := make(chan T, cfg.Workers*2)
	var (
		wg     sync.WaitGroup
		failed int64
	)

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range itemChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				status, err := c.postJSON(ctx, url, item)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					if cfg.Verbose {
						logger.Get().Warn(ctx, "submission failed", logger.String("url", url), logger.Error(err))
					}
					continue
				}
				counter, ok := accepted[status]
				if !ok {
					atomic.AddInt64(&failed, 1)
					if cfg.Verbose {
						logger.Get().Warn(ctx, "submission rejected", logger.String("url", url), logger.Int("status", status))
					}
					continue
				}
				atomic.AddInt64(counter, 1)
			}
		}()
	}

	for _, item := range items {
		select {
		case <-ctx.Done():
			close(itemChan)
			wg.Wait()
			return atomic.LoadInt64(&failed)
		case itemChan <- item:
		}
	}
	close(itemChan)
	wg.Wait()
	return atomic.LoadInt64(&failed)
}
