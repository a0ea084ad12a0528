package httpx

import (
	"crypto/tls"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout             = 30 * time.Second
	DefaultMaxConnsPerHost     = 512
	DefaultMaxIdleConnDuration = 10 * time.Second
	DefaultReadBufferSize      = 4096
	DefaultWriteBufferSize     = 4096
	DefaultMaxResponseBodySize = 16 * 1024 * 1024
	DefaultUserAgent           = "RuleGuard"
)

type FastHTTPClientOptions struct {
	// Timeout bounds reads and writes when the specific timeouts are unset
	Timeout             time.Duration
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	InsecureSkipVerify  bool
	MaxConnsPerHost     int
	MaxIdleConnDuration time.Duration
	MaxResponseBodySize int
	UserAgent           string
}

type FastHTTPClientOption func(*FastHTTPClientOptions)

func WithTimeout(timeout time.Duration) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.Timeout = timeout
	}
}

func WithInsecureSkipVerify(skip bool) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.InsecureSkipVerify = skip
	}
}

func WithMaxConnsPerHost(max int) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.MaxConnsPerHost = max
	}
}

func WithUserAgent(userAgent string) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.UserAgent = userAgent
	}
}

// NewFastHTTPClient builds the shared outbound client used for embedding
// requests.
func NewFastHTTPClient(opts ...FastHTTPClientOption) *fasthttp.Client {
	options := &FastHTTPClientOptions{
		Timeout:             DefaultTimeout,
		MaxConnsPerHost:     DefaultMaxConnsPerHost,
		MaxIdleConnDuration: DefaultMaxIdleConnDuration,
		MaxResponseBodySize: DefaultMaxResponseBodySize,
		UserAgent:           DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(options)
	}

	client := &fasthttp.Client{
		Name:                options.UserAgent,
		MaxConnsPerHost:     options.MaxConnsPerHost,
		MaxIdleConnDuration: options.MaxIdleConnDuration,
		ReadBufferSize:      DefaultReadBufferSize,
		WriteBufferSize:     DefaultWriteBufferSize,
		MaxResponseBodySize: options.MaxResponseBodySize,
		ReadTimeout:         options.ReadTimeout,
		WriteTimeout:        options.WriteTimeout,
	}
	if client.ReadTimeout == 0 {
		client.ReadTimeout = options.Timeout
	}
	if client.WriteTimeout == 0 {
		client.WriteTimeout = options.Timeout
	}
	if options.InsecureSkipVerify {
		client.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // intentionally configurable
		}
	}
	return client
}
