// Package diseaseapi is a small client for the disease.sh COVID-19 API.
package diseaseapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"covid19-tracker-service/internal/metrics"
	"covid19-tracker-service/internal/model"

	"emperror.dev/errors"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/sirupsen/logrus"
)

const DefaultBaseURL = "https://disease.sh/v3/covid-19"

const (
	endpointWorldwide = "all"
	endpointCountries = "countries"
	endpointCountry   = "country"
)

// Fetcher is everything the dashboard needs from upstream.
type Fetcher interface {
	Worldwide(ctx context.Context) (model.WorldwideSummary, error)
	Countries(ctx context.Context) ([]model.CountrySummary, error)
	Country(ctx context.Context, code string) (model.CountrySummary, error)
}

// BodyCache stores raw response bodies keyed by request path. Implementations
// must expire entries on their own; a miss always goes upstream.
type BodyCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, body []byte)
}

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	cache      BodyCache
}

type Option func(*Client)

func WithCache(cache BodyCache) Option {
	return func(c *Client) { c.cache = cache }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithTimeout sets the overall request timeout. Zero means none.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  "covid19-tracker-service/1.0",
		httpClient: cleanhttp.DefaultPooledClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HTTPClient exposes the underlying client, mostly so tests can mock its transport.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

func (c *Client) Worldwide(ctx context.Context) (model.WorldwideSummary, error) {
	var out model.WorldwideSummary
	err := c.get(ctx, endpointWorldwide, "/all", &out)
	return out, err
}

func (c *Client) Countries(ctx context.Context) ([]model.CountrySummary, error) {
	var out []model.CountrySummary
	if err := c.get(ctx, endpointCountries, "/countries", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.CountrySummary{}
	}
	return out, nil
}

func (c *Client) Country(ctx context.Context, code string) (model.CountrySummary, error) {
	var out model.CountrySummary
	if code == "" {
		return out, ErrEmptyCountryCode
	}

	err := c.get(ctx, endpointCountry, "/countries/"+url.PathEscape(code), &out)
	if err != nil {
		return out, err
	}
	if out.Country == "" {
		return out, &RequestError{Kind: ErrMalformedResponse, Endpoint: endpointCountry, Message: "missing country field"}
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, out interface{}) error {
	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, path); ok {
			if err := json.Unmarshal(body, out); err == nil {
				metrics.CacheLookups.WithLabelValues("hit").Inc()
				return nil
			}
			logrus.WithField("path", path).Warn("Discarding undecodable cached response")
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	body, err := c.fetch(ctx, endpoint, path)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "malformed").Inc()
		return &RequestError{Kind: ErrMalformedResponse, Endpoint: endpoint, Err: err}
	}

	metrics.UpstreamRequests.WithLabelValues(endpoint, "ok").Inc()
	if c.cache != nil {
		c.cache.Set(ctx, path, body)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, endpoint, path string) ([]byte, error) {
	started := time.Now()
	defer func() {
		metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.WrapIf(err, "building request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Kind: ErrNetworkFailure, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Kind: ErrNetworkFailure, Endpoint: endpoint, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{
			Kind:       ErrNetworkFailure,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(body),
		}
	}

	return body, nil
}

// upstreamMessage pulls the "message" field disease.sh puts in its error bodies.
func upstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

var _ Fetcher = (*Client)(nil)
