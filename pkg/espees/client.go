// Package espees is a client SDK for the Espee swap API: account creation,
// login, reference attributes, and swap transactions, behind a resilient
// transport with retries, offline awareness, and normalized errors.
package espees

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/espeeswap/espeeswap-go/internal/endpoints"
	"github.com/espeeswap/espeeswap-go/internal/netstatus"
	"github.com/espeeswap/espeeswap-go/internal/tokenstore"
	"github.com/espeeswap/espeeswap-go/internal/transport"
	"github.com/espeeswap/espeeswap-go/internal/types"
	"github.com/getsentry/sentry-go"
)

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = types.DefaultTimeout

	// PingTimeout is the short timeout for liveness probes
	PingTimeout = types.PingTimeout

	// UserAgent is the user agent string
	UserAgent = types.UserAgent
)

// Logger interface for logging
type Logger = types.Logger

// RetryConfig configures retry behavior
type RetryConfig = types.RetryConfig

// Hooks provides lifecycle hooks for requests
type Hooks = types.Hooks

// RequestOptions shape a single request
type RequestOptions = transport.RequestOptions

// TokenStore abstracts durable token storage
type TokenStore = tokenstore.Store

// NewFileTokenStore creates a durable token store under dir (the user config
// dir when empty). With a non-empty secret the token is sealed with
// AES-256-GCM at rest; without one it is stored in plaintext.
func NewFileTokenStore(dir string, secret []byte) (TokenStore, error) {
	return tokenstore.NewFileStore(dir, secret)
}

// Client is the main swap API client
type Client struct {
	// Service interfaces
	Auth         AuthService
	Attributes   AttributeService
	Transactions TransactionService

	// Internal fields
	baseURL   string
	transport Transport
	options   *ClientOptions
	tokens    *tokenstore.Manager
	network   *netstatus.Monitor
}

// ClientOptions configures the client
type ClientOptions struct {
	// BaseURL is the API base URL. Required.
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Token provides a previously issued bearer token
	Token string

	// TokenStore mirrors the token to durable storage. Defaults to an
	// in-memory store with no reload persistence.
	TokenStore TokenStore

	// Headers adds or overrides default request headers
	Headers map[string]string

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior
	RetryConfig *RetryConfig

	// Hooks for observability
	Hooks *Hooks

	// RefreshToken exchanges an expired session for a fresh token. When nil,
	// a 401 on an authenticated request expires the session immediately.
	RefreshToken func(ctx context.Context) (string, error)

	// OnAuthExpired runs (after a short delay) when the session is
	// invalidated, so the caller can route the user back to login.
	OnAuthExpired func()

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// NewClient creates a new swap API client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		return nil, &ValidationError{Field: "BaseURL", Message: "is required"}
	}

	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	// Initialize Sentry if configured
	sentryEnabled := opts.SentryDSN != "" || opts.SentryOptions != nil
	if sentryEnabled {
		sentryOpts := sentry.ClientOptions{}
		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}
		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}
		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}
		if err := sentry.Init(sentryOpts); err != nil {
			sentryEnabled = false
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	tokens := tokenstore.NewManager(opts.TokenStore)
	network := netstatus.New()

	c := &Client{
		baseURL: opts.BaseURL,
		options: opts,
		tokens:  tokens,
		network: network,
	}

	c.transport = transport.NewREST(&transport.Options{
		BaseURL:       opts.BaseURL,
		HTTPClient:    opts.HTTPClient,
		Headers:       opts.Headers,
		RetryConfig:   opts.RetryConfig,
		Tokens:        tokens,
		Network:       network,
		Refresh:       opts.RefreshToken,
		OnAuthExpired: opts.OnAuthExpired,
		Logger:        opts.Logger,
		Hooks:         opts.Hooks,
		SentryEnabled: sentryEnabled,
	})

	c.initServices()

	// Apply a caller-supplied token
	if opts.Token != "" {
		if err := c.SetToken(opts.Token); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// NewClientWithToken creates a client for a base URL with an existing token
func NewClientWithToken(baseURL, token string) (*Client, error) {
	return NewClient(&ClientOptions{
		BaseURL: baseURL,
		Token:   token,
	})
}

// validateOptions checks options at construction, reporting the failing field.
func validateOptions(opts *ClientOptions) error {
	if opts.BaseURL == "" {
		return &ValidationError{Field: "BaseURL", Message: "is required"}
	}

	u, err := url.Parse(opts.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ValidationError{Field: "BaseURL", Message: "must be an absolute URL"}
	}

	if opts.Timeout < 0 {
		return &ValidationError{Field: "Timeout", Message: "must not be negative"}
	}

	if opts.RetryConfig != nil {
		if opts.RetryConfig.MaxRetries < 0 {
			return &ValidationError{Field: "RetryConfig.MaxRetries", Message: "must not be negative"}
		}
		if opts.RetryConfig.RetryWait < 0 || opts.RetryConfig.MaxWait < 0 {
			return &ValidationError{Field: "RetryConfig", Message: "waits must not be negative"}
		}
	}

	return nil
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Auth = &authService{client: c}
	c.Attributes = &attributeService{client: c}
	c.Transactions = &transactionService{client: c}
}

// SetToken replaces the active bearer token. It is persisted before the
// in-memory value updates; a persistence failure invalidates the session.
func (c *Client) SetToken(token string) error {
	if token == "" {
		return c.ClearToken()
	}

	if err := c.tokens.Set(token); err != nil {
		c.expireSession()
		return err
	}
	return nil
}

// ClearToken removes the token from memory and storage.
func (c *Client) ClearToken() error {
	return c.tokens.Clear()
}

// Token returns the active bearer token, or "" when signed out.
func (c *Client) Token() string {
	return c.tokens.Get()
}

// expireSession clears the token and notifies the caller, mirroring what the
// transport does on an unrecoverable 401.
func (c *Client) expireSession() {
	_ = c.tokens.Clear()
	if c.options.OnAuthExpired != nil {
		time.AfterFunc(types.AuthExpiryNoticeDelay, c.options.OnAuthExpired)
	}
}

// Online reports the last known connectivity state.
func (c *Client) Online() bool {
	return c.network.Online()
}

// SetOnline feeds an environment connectivity event into the client. An
// offline→online transition releases requests waiting for the network.
func (c *Client) SetOnline(online bool) {
	c.network.SetOnline(online)
}

// Ping probes the API with a short timeout and records the result as the
// current network status. A failed probe never panics or retries the caller's
// work; it surfaces as a normalized error.
func (c *Client) Ping(ctx context.Context) error {
	err := c.transport.Do(ctx, endpoints.Ping, nil, &RequestOptions{
		Timeout: PingTimeout,
		NoAuth:  true,
	}, nil)

	c.network.SetOnline(err == nil || serverReached(err))
	return err
}

// serverReached reports whether an error still proves connectivity (the
// server answered, just not with a 2xx).
func serverReached(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status > 0 && apiErr.Code != types.CodeRequestTimeout
	}
	return false
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	sentry.Flush(2 * time.Second)
}
