package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/credbureau/scoring-service/internal/domain/service"
)

// HTTPModelClient implements port.ModelClient against a model-serving layer
// reachable over HTTP. The server is expected to expose POST /predict taking
// the feature record as a JSON object and returning
// {"probability_of_default": <float>}, and GET /status for health.
type HTTPModelClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPModelClient creates a client for the model server at baseURL.
func NewHTTPModelClient(baseURL string, logger *slog.Logger) *HTTPModelClient {
	return &HTTPModelClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type predictResponse struct {
	ProbabilityOfDefault float64 `json:"probability_of_default"`
}

// Predict sends the feature record to the model server. Every failure mode
// (transport, status, decoding) comes back as a plain error for the caller
// to translate into its own taxonomy.
func (c *HTTPModelClient) Predict(ctx context.Context, features service.FeatureRecord) (float64, error) {
	body, err := json.Marshal(features)
	if err != nil {
		return 0, fmt.Errorf("ml: encode features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("ml: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("ml: model server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("ml: model server returned status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("ml: decode prediction: %w", err)
	}

	c.logger.Debug("model prediction received",
		slog.Float64("probability_of_default", out.ProbabilityOfDefault),
	)

	return out.ProbabilityOfDefault, nil
}

// Health checks the model server's /status endpoint.
func (c *HTTPModelClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status", nil)
	if err != nil {
		return fmt.Errorf("ml: build status request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ml: model server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ml: model server unhealthy, status %d", resp.StatusCode)
	}
	return nil
}
