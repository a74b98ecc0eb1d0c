package duckduckgo

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.duckduckgo.com/"
	defaultTimeout = 10 * time.Second
)

// Adapter fetches web context snippets from the DuckDuckGo Instant Answer
// API. The API needs no credentials.
type Adapter struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

type Option func(*Adapter)

func WithBaseURL(baseURL string) Option {
	return func(a *Adapter) {
		a.baseURL = baseURL
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(a *Adapter) {
		a.httpClient = client
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

func New(options ...Option) *Adapter {
	a := &Adapter{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		logger:     zap.NewNop(),
	}

	for _, o := range options {
		o(a)
	}

	return a
}

const adapterName = "duckduckgo"

func (a *Adapter) Name() string {
	return adapterName
}
