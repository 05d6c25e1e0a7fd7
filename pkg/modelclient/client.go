package modelclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks JSON-over-HTTP to the hosted model gateway. Every call carries
// its own bounded timeout; exceeding it is indistinguishable from a capability
// failure to callers.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// New creates a new Client. The timeout applies per call and should stay
// within the hosting environment's maximum request lifetime.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Make sure we conform to the interfaces
var _ Generator = (*Client)(nil)
var _ Measurer = (*Client)(nil)
var _ Comparer = (*Client)(nil)

// Generate invokes the content-generation capability.
func (c *Client) Generate(ctx context.Context, req *GenerationRequest) (*GenerationResponse, error) {
	var resp GenerationResponse
	if err := c.post(ctx, "/v1/generate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Measure invokes the vision measurement capability.
func (c *Client) Measure(ctx context.Context, req *MeasureRequest) (*RawMeasurement, error) {
	var resp RawMeasurement
	if err := c.post(ctx, "/v1/measure", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Compare invokes the vision comparison capability.
func (c *Client) Compare(ctx context.Context, req *CompareRequest) (*RawComparison, error) {
	var resp RawComparison
	if err := c.post(ctx, "/v1/compare", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// post sends a JSON request and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("capability call %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a bounded slice of the body for the error message.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("capability call %s returned status %d: %s", path, resp.StatusCode, snippet)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}
