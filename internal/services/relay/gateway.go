package relay

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	apperrors "github.com/killallgit/xianplay-api/pkg/errors"
)

// Default outbound headers, shaped like a desktop browser loading an image
// from the catalog site.
const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DefaultReferer   = "https://www.dramabox.com/"
	DefaultAccept    = "image/webp,image/apng,image/*,*/*;q=0.8"

	DefaultTimeout      = 15 * time.Second
	DefaultMaxBodyBytes = 10 << 20
	DefaultContentType  = "image/jpeg"

	// CacheControl is attached to every successful relay response
	CacheControl = "public, max-age=86400, s-maxage=86400"

	maxRedirects = 10
)

// Config holds configuration for the relay gateway
type Config struct {
	AllowedDomains []string
	UserAgent      string
	Referer        string
	Accept         string
	Timeout        time.Duration
	// MaxBodyBytes caps the upstream body; zero disables the cap
	MaxBodyBytes int64
	HTTPClient   *http.Client
}

// Response is a fetched upstream image ready to be written back to the caller
type Response struct {
	ContentType string
	Body        []byte
}

// Gateway fetches allow-listed images on behalf of browsers that cannot load
// them directly. It holds no per-request state and is safe for concurrent use.
type Gateway struct {
	policy       *AllowListPolicy
	httpClient   *http.Client
	userAgent    string
	referer      string
	accept       string
	maxBodyBytes int64
	log          *logrus.Entry
}

// NewGateway creates a relay gateway, filling unset fields with defaults
func NewGateway(cfg Config) *Gateway {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Referer == "" {
		cfg.Referer = DefaultReferer
	}
	if cfg.Accept == "" {
		cfg.Accept = DefaultAccept
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxBodyBytes < 0 {
		cfg.MaxBodyBytes = 0
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = newRelayClient(cfg.Timeout)
	}

	return &Gateway{
		policy:       NewAllowListPolicy(cfg.AllowedDomains),
		httpClient:   httpClient,
		userAgent:    cfg.UserAgent,
		referer:      cfg.Referer,
		accept:       cfg.Accept,
		maxBodyBytes: cfg.MaxBodyBytes,
		log:          logrus.WithField("component", "relay"),
	}
}

// Policy returns the allow-list the gateway enforces
func (g *Gateway) Policy() *AllowListPolicy {
	return g.policy
}

// Relay percent-decodes rawURL, checks it against the allow-list and fetches
// it. Every failure is an *errors.AppError carrying one of the relay codes;
// validation failures happen before any network activity.
func (g *Gateway) Relay(ctx context.Context, rawURL string) (*Response, error) {
	if rawURL == "" {
		return nil, apperrors.MissingParameter("url")
	}

	target, err := url.PathUnescape(rawURL)
	if err != nil {
		return nil, apperrors.UnknownFailure(fmt.Errorf("decoding url: %w", err))
	}

	if !g.policy.Allows(target) {
		g.log.WithField("url", target).Debug("relay target rejected by allow-list")
		return nil, apperrors.ForbiddenDomain(target)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, apperrors.UnknownFailure(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Referer", g.referer)
	req.Header.Set("Accept", g.accept)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.log.WithError(err).WithField("url", target).Warn("relay fetch failed")
		return nil, apperrors.UnknownFailure(fmt.Errorf("executing request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.log.WithFields(logrus.Fields{
			"url":    target,
			"status": resp.StatusCode,
		}).Warn("relay upstream returned non-success status")
		return nil, apperrors.UpstreamStatus(resp.StatusCode)
	}

	body, err := g.readBody(resp.Body)
	if err != nil {
		g.log.WithError(err).WithField("url", target).Warn("relay body read failed")
		return nil, apperrors.UnknownFailure(err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = DefaultContentType
	}

	g.log.WithFields(logrus.Fields{
		"url":          target,
		"content_type": contentType,
		"bytes":        len(body),
	}).Debug("relayed image")

	return &Response{ContentType: contentType, Body: body}, nil
}

func (g *Gateway) readBody(r io.Reader) ([]byte, error) {
	if g.maxBodyBytes == 0 {
		body, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading response: %w", err)
		}
		return body, nil
	}

	body, err := io.ReadAll(io.LimitReader(r, g.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if int64(len(body)) > g.maxBodyBytes {
		return nil, fmt.Errorf("response exceeds %d bytes", g.maxBodyBytes)
	}
	return body, nil
}

// newRelayClient returns a pooled client for image fetches. Redirects are
// followed but each hop must stay on http or https.
func newRelayClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: timeout,
			ExpectContinueTimeout: 1 * time.Second,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("too many redirects")
			}
			if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
				return fmt.Errorf("invalid redirect scheme: %s", req.URL.Scheme)
			}
			return nil
		},
	}
}
