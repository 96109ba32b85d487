package utils

import (
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds a single call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// HTTPClientConfig controls transport-level behaviour of [HTTPClient].
type HTTPClientConfig struct {
	// Timeout of a single call. Zero or negative means DefaultTimeout.
	Timeout time.Duration
	// InsecureSkipVerify disables TLS peer verification.
	InsecureSkipVerify bool
	// UserAgent, if set, is sent with every request.
	UserAgent string
	// Logger receives resty's own diagnostics. Nil keeps resty's default.
	Logger resty.Logger
}

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientConfig{Timeout: 10 * time.Second})
//	resp, err := client.R().Get("https://tiers.klevu.com/uti/getFeaturesAndUpgradeLink")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient configured from cfg.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. Retries stay disabled: every
// request is attempted exactly once.
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0)

	if cfg.InsecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // opt-in via config
	}
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}
	if cfg.Logger != nil {
		client.SetLogger(cfg.Logger)
	}

	return &HTTPClient{Client: client}
}
