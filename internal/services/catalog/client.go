package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL   = "https://dramabox.sansekai.my.id/api/dramabox"
	DefaultUserAgent = "XianPlayAPI/1.0"
	DefaultTimeout   = 10 * time.Second

	maxResponseBytes = 8 << 20
)

// Catalog endpoint suffixes
const (
	endpointTrending      = "/trending"
	endpointLatest        = "/latest"
	endpointPopularSearch = "/populersearch"
	endpointVIP           = "/vip"
	endpointSearch        = "/search"
	endpointDetail        = "/detail"
	endpointAllEpisodes   = "/allepisode"
	endpointRandom        = "/randomdrama"
)

// listEnvelopeKeys are the object keys a list payload may be wrapped under
var listEnvelopeKeys = []string{"data", "list", "records"}

// Client handles communication with the drama catalog API. No operation
// returns an error: failures are logged and replaced by a sentinel (an empty
// slice or an absent option).
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	log        *logrus.Entry
}

// Config holds configuration for the catalog client
type Config struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewClient creates a new catalog API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		log:        logrus.WithField("component", "catalog"),
	}
}

// BaseURL returns the catalog base path requests are issued against
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetTrending returns the trending shelf
func (c *Client) GetTrending(ctx context.Context) []RawDrama {
	return fetchList[RawDrama](ctx, c, endpointTrending)
}

// GetLatest returns the newest releases
func (c *Client) GetLatest(ctx context.Context) []RawDrama {
	return fetchList[RawDrama](ctx, c, endpointLatest)
}

// GetPopularSearch returns the popular-search shelf
func (c *Client) GetPopularSearch(ctx context.Context) []RawDrama {
	return fetchList[RawDrama](ctx, c, endpointPopularSearch)
}

// GetVIP returns the featured shelf, or None when it could not be fetched
func (c *Client) GetVIP(ctx context.Context) mo.Option[VIPFeed] {
	return fetchOne[VIPFeed](ctx, c, endpointVIP)
}

// Search returns dramas matching the query. The query is URL-encoded but
// otherwise passed through unchecked.
func (c *Client) Search(ctx context.Context, query string) []RawDrama {
	return fetchList[RawDrama](ctx, c, endpointSearch+"?query="+escapeComponent(query))
}

// GetDetail returns one drama, or None when it could not be fetched
func (c *Client) GetDetail(ctx context.Context, bookID string) mo.Option[DramaDetail] {
	return fetchOne[DramaDetail](ctx, c, endpointDetail+"?bookId="+bookID)
}

// GetAllEpisodes returns every episode of a drama in catalog order
func (c *Client) GetAllEpisodes(ctx context.Context, bookID string) []Episode {
	return fetchList[Episode](ctx, c, endpointAllEpisodes+"?bookId="+bookID)
}

// GetRandom returns a random selection of dramas
func (c *Client) GetRandom(ctx context.Context) []RawDrama {
	return fetchList[RawDrama](ctx, c, endpointRandom)
}

func fetchList[T any](ctx context.Context, c *Client, endpoint string) []T {
	raw, err := c.makeAPIRequest(ctx, endpoint)
	if err == nil {
		var items []T
		items, err = decodeList[T](raw, c.log.WithField("endpoint", endpoint))
		if err == nil {
			return items
		}
	}
	c.degraded(endpoint, err)
	return []T{}
}

func fetchOne[T any](ctx context.Context, c *Client, endpoint string) mo.Option[T] {
	raw, err := c.makeAPIRequest(ctx, endpoint)
	if err == nil {
		if isNull(raw) {
			err = fmt.Errorf("empty payload")
		} else {
			var item T
			if err = json.Unmarshal(raw, &item); err == nil {
				return mo.Some(item)
			}
			err = fmt.Errorf("decoding response: %w", err)
		}
	}
	c.degraded(endpoint, err)
	return mo.None[T]()
}

func (c *Client) degraded(endpoint string, err error) {
	c.log.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"error":    err,
	}).Warn("catalog request failed, returning empty result")
}

// makeAPIRequest issues a GET against the base path and returns the raw JSON body
func (c *Client) makeAPIRequest(ctx context.Context, endpoint string) (json.RawMessage, error) {
	fullURL := c.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("decoding response: invalid JSON")
	}

	c.log.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bytes":    len(body),
	}).Debug("catalog request completed")

	return body, nil
}

// decodeList accepts a bare array or an object wrapping one under a known key.
// Wrappers may nest, e.g. {"data": {"list": [...]}}.
func decodeList[T any](raw json.RawMessage, log *logrus.Entry) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return []T{}, nil
	}

	if raw[0] == '[' {
		return decodeEach[T](raw, log)
	}

	if raw[0] == '{' {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, fmt.Errorf("decoding envelope: %w", err)
		}
		for _, key := range listEnvelopeKeys {
			inner, ok := envelope[key]
			if !ok || isNull(inner) {
				continue
			}
			return decodeList[T](inner, log)
		}
	}

	return nil, fmt.Errorf("unrecognised list payload")
}

// escapeComponent query-escapes s with spaces as %20 rather than +
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
