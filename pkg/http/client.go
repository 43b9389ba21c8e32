package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
)

const (
	MethodGet  = http.MethodGet
	MethodPost = http.MethodPost
)

const adminTokenHeader = "X-Admin-Token"

// ClientOption configures Client.
type ClientOption func(*Client)

// RequestOptions holds request parameters for a single backend call.
type RequestOptions struct {
	Method      string
	QueryParams map[string][]string
	Body        interface{}
}

// Client is the low-level request primitive against the trade backend.
// Every call carries the fixed header set: JSON content type plus the
// static admin token from configuration.
type Client struct {
	baseURL    string
	adminToken string
	timeout    time.Duration
	client     *http.Client
}

// NewClient creates a new backend request client.
func NewClient(baseURL, adminToken string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		adminToken: adminToken,
		// No timeout by default: a hung request keeps its controller in
		// loading until the backend answers. Retries are the operator's job.
		timeout: 0,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{Timeout: c.timeout}
	return c
}

// Do sends a request to the given backend path and decodes the JSON
// response into dest. A 204 leaves dest untouched. Non-2xx statuses
// come back as *APIError carrying the status code and response text;
// transport failures are returned as-is.
func (c *Client) Do(ctx context.Context, path string, opts *RequestOptions, dest interface{}) error {
	req, err := c.buildRequest(ctx, path, opts)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	if resp.StatusCode == http.StatusNoContent || dest == nil {
		return nil
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	return nil
}

func (c *Client) buildRequest(ctx context.Context, path string, opts *RequestOptions) (*http.Request, error) {
	method := MethodGet
	if opts != nil && opts.Method != "" {
		method = opts.Method
	}

	var body io.Reader
	if opts != nil && opts.Body != nil {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	if opts != nil {
		c.addQueryParams(req, opts.QueryParams)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(adminTokenHeader, c.adminToken)

	return req, nil
}

func (c *Client) addQueryParams(req *http.Request, params map[string][]string) {
	if len(params) > 0 {
		q := url.Values{}
		for key, values := range params {
			for _, value := range values {
				q.Add(key, value)
			}
		}
		req.URL.RawQuery = q.Encode()
	}
}

// WithTimeout sets client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}
