package apod

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// DefaultEndpoint is NASA's public APOD endpoint.
const DefaultEndpoint = "https://api.nasa.gov/planetary/apod"

// maxBody bounds how much of a response is read.
const maxBody = 4 << 20

// Client fetches Picture records. It performs no caching and no retries.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
	log      *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout bounds each request. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		clone := *c.http
		clone.Timeout = d
		c.http = &clone
	}
}

// WithLogger sets the structured logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a Client for endpoint. An empty endpoint selects
// DefaultEndpoint. The api key is passed through as-is, empty included.
func New(endpoint, apiKey string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{},
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the configured endpoint.
func (c *Client) Endpoint() string { return c.endpoint }

// Fetch retrieves the record for date, or the latest record when date is nil.
// Every failure is a *FetchError.
func (c *Client) Fetch(ctx context.Context, date *time.Time) (*Picture, error) {
	day := ""
	if date != nil {
		day = FormatDate(*date)
	}
	return c.fetch(ctx, day)
}

func (c *Client) fetch(ctx context.Context, day string) (*Picture, error) {
	reqID := uuid.NewString()
	log := c.log.With("request_id", reqID, "date", day)

	u, err := c.requestURL(day)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Date: day, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Date: day, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	log.DebugContext(ctx, "apod request")
	resp, err := c.http.Do(req)
	if err != nil {
		log.DebugContext(ctx, "apod request failed", "error", err)
		return nil, &FetchError{Kind: KindTransport, Date: day, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Date: day, Err: err}
	}
	log.DebugContext(ctx, "apod response", "status", resp.StatusCode, "latency", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Kind: KindTransport,
			Date: day,
			Err:  &StatusError{Code: resp.StatusCode, Message: apiMessage(body)},
		}
	}

	var p Picture
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &FetchError{Kind: KindParse, Date: day, Err: err}
	}
	if p.Date == "" && p.URL == "" {
		return nil, &FetchError{Kind: KindParse, Date: day, Err: errors.New("record has no date or url")}
	}
	return &p, nil
}

func (c *Client) requestURL(day string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("endpoint %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	if day != "" {
		q.Set("date", day)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// apiMessage digs the human readable message out of an API error body. The
// service uses both {"msg": ...} and {"error": {"message": ...}} shapes.
func apiMessage(body []byte) string {
	var shape struct {
		Msg   string `json:"msg"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &shape); err != nil {
		return ""
	}
	if shape.Msg != "" {
		return shape.Msg
	}
	return shape.Error.Message
}
