// Package sequencescape is a small client for the Sequencescape search API.
// A search is found by name in the searches collection, then queried
// through its "first" action.
package sequencescape

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jinzhu/inflection"
	gocache "github.com/patrickmn/go-cache"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ErrSearchNotFound means the searches collection has no search with the requested name
var ErrSearchNotFound = errors.New("search not found")

// StatusError is returned when Sequencescape answers with a non-2xx status
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Observer is told about every search performed. outcome is "found", "empty" or "error".
type Observer func(endpoint, outcome string)

// Client talks to one Sequencescape API root
type Client struct {
	apiRoot    string
	httpClient *http.Client
	collection string
	headers    http.Header
	uuids      *gocache.Cache
	uuidTTL    time.Duration
	logger     *slog.Logger
	observe    Observer
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithSearchesCollection sets the name of the searches resource (default "searches")
func WithSearchesCollection(name string) Option {
	return func(c *Client) { c.collection = name }
}

// WithHeader adds a header to every request, such as X-Sequencescape-Client-Id
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// WithUUIDCache keeps resolved search UUIDs for ttl. Without it every search
// resolves its UUID again.
func WithUUIDCache(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.uuidTTL = ttl
			c.uuids = gocache.New(ttl, 2*ttl)
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithObserver registers a callback for search outcomes
func WithObserver(observe Observer) Option {
	return func(c *Client) { c.observe = observe }
}

// NewClient returns a client for apiRoot
func NewClient(apiRoot string, opts ...Option) *Client {
	c := &Client{
		apiRoot: strings.TrimRight(apiRoot, "/"),
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		collection: "searches",
		headers:    make(http.Header),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchUUID finds the UUID of the search named by endpoint
func (c *Client) SearchUUID(ctx context.Context, endpoint Endpoint) (string, error) {
	if c.uuids != nil {
		if cached, found := c.uuids.Get(endpoint.Name); found {
			return cached.(string), nil
		}
	}

	var body map[string]json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/"+c.collection, nil, &body); err != nil {
		return "", fmt.Errorf("failed to list %s: %w", c.collection, err)
	}

	var searches []struct {
		Name string `json:"name"`
		UUID string `json:"uuid"`
	}
	raw, ok := body[c.collection]
	if !ok {
		return "", fmt.Errorf("response has no %q collection", c.collection)
	}
	if err := json.Unmarshal(raw, &searches); err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", c.collection, err)
	}

	for _, search := range searches {
		if search.Name == endpoint.Name {
			if c.uuids != nil {
				c.uuids.Set(endpoint.Name, search.UUID, c.uuidTTL)
			}
			return search.UUID, nil
		}
	}
	return "", fmt.Errorf("could not find search %q: %w", endpoint.Name, ErrSearchNotFound)
}

// Find runs the search described by endpoint with query and extracts its return fields
func (c *Client) Find(ctx context.Context, endpoint Endpoint, query string) (Result, error) {
	result, err := c.find(ctx, endpoint, query)
	if c.observe != nil {
		switch {
		case err != nil:
			c.observe(endpoint.Name, "error")
		case result.Found():
			c.observe(endpoint.Name, "found")
		default:
			c.observe(endpoint.Name, "empty")
		}
	}
	return result, err
}

func (c *Client) find(ctx context.Context, endpoint Endpoint, query string) (Result, error) {
	searchUUID, err := c.SearchUUID(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	root := endpoint.Root
	if root == "" {
		root = inflection.Singular(c.collection)
	}
	payload := map[string]map[string]string{
		root: {endpoint.Parameter: query},
	}

	var doc any
	if err := c.do(ctx, http.MethodPost, "/"+searchUUID+"/first", payload, &doc); err != nil {
		var statusErr *StatusError
		if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
			return nil, fmt.Errorf("search %q failed: %w", endpoint.Name, err)
		}
		// Sequencescape answers a search without matches with 404
		if c.uuids != nil {
			c.uuids.Delete(endpoint.Name)
		}
		doc = nil
	}

	result := make(Result, len(endpoint.Returns))
	for _, field := range endpoint.Returns {
		value, _ := Extract(doc, field.Path)
		result[field.Key] = value
	}

	c.logger.DebugContext(ctx, "Sequencescape search completed",
		slog.String("search", endpoint.Name),
		slog.Bool("found", result.Found()),
	)
	return result, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	url := c.apiRoot + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Method: method, URL: url, StatusCode: resp.StatusCode, Body: string(data)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
