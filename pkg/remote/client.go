package remote

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/logging"
	"github.com/goccy/go-json"
)

const (
	// DefaultTimeout bounds every metadata request
	DefaultTimeout = 5 * time.Second
	// DefaultUserAgent is sent when no other agent is configured
	DefaultUserAgent = "modkeeper"

	maxTextSize = 4 << 20
)

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the metadata request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the metadata HTTP client. Its timeout is kept.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// Client fetches remote modpack metadata and artifacts
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient creates a Client with a 5 second metadata timeout
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type versionDocument struct {
	Version interface{} `json:"version"`
}

// FetchVersion returns the published modpack version. ok is false when the
// version is unknown for any reason.
func (c *Client) FetchVersion(ctx context.Context, url string) (v string, ok bool) {
	logger := logging.GetLogger("remote").With().Str("url", url).Logger()

	body, err := c.get(ctx, url)
	if err != nil {
		logger.Warn().Err(err).Msg("remote version unavailable")
		return "", false
	}

	var doc versionDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		logger.Warn().Err(err).Msg("remote version document is not valid JSON")
		return "", false
	}

	// numbers would lose their formatting (1.10 decodes as 1.1)
	if s, isString := doc.Version.(string); isString {
		v = strings.TrimSpace(s)
	}
	if v == "" {
		logger.Warn().Interface("version", doc.Version).Msg("remote version document has no string version")
		return "", false
	}

	logger.Debug().Str("version", v).Msg("fetched remote version")
	return v, true
}

// FetchChangelog returns the published changelog text, or ok == false
func (c *Client) FetchChangelog(ctx context.Context, url string) (string, bool) {
	body, err := c.get(ctx, url)
	if err != nil {
		logger := logging.GetLogger("remote")
		logger.Warn().Err(err).Str("url", url).Msg("changelog unavailable")
		return "", false
	}
	text := strings.TrimSpace(string(body))
	return text, text != ""
}

// FetchText returns the body of url. Unlike the metadata lookups it reports
// failures, for callers that must not write partial data.
func (c *Client) FetchText(ctx context.Context, url string) (string, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no URL configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "bad URL %s", url)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDownloadFailed, "request to %s failed", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.ErrDownloadFailed, "%s returned %s", url, resp.Status).
			WithDetail("status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTextSize))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDownloadFailed, "failed to read %s", url)
	}
	return body, nil
}
