// Package transport issues HTTP requests against the swap API: request
// construction, default headers, token injection, retry with backoff,
// 401 refresh-replay, and normalization of every failure into one error shape.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/espeeswap/espeeswap-go/internal/endpoints"
	"github.com/espeeswap/espeeswap-go/internal/netstatus"
	"github.com/espeeswap/espeeswap-go/internal/tokenstore"
	"github.com/espeeswap/espeeswap-go/internal/types"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

const (
	authHeaderKey = "Authorization"
	requestIDKey  = "X-Request-ID"
	contentType   = "application/json"
	bearerScheme  = "Bearer "
)

// REST executes requests against a single base URL.
type REST struct {
	baseURL       string
	httpClient    *http.Client
	retryClient   *retryablehttp.Client
	headers       map[string]string
	tokens        *tokenstore.Manager
	network       *netstatus.Monitor
	refresh       func(ctx context.Context) (string, error)
	onAuthExpired func()
	logger        types.Logger
	hooks         *types.Hooks
	sentryEnabled bool
}

// Options for the REST transport.
type Options struct {
	BaseURL       string
	HTTPClient    *http.Client
	Headers       map[string]string
	RetryConfig   *types.RetryConfig
	Tokens        *tokenstore.Manager
	Network       *netstatus.Monitor
	Refresh       func(ctx context.Context) (string, error)
	OnAuthExpired func()
	Logger        types.Logger
	Hooks         *types.Hooks
	SentryEnabled bool
}

// RequestOptions shape a single request.
type RequestOptions struct {
	// Query parameters appended to the URL.
	Query url.Values

	// Body is JSON-marshalled into the request body when non-nil.
	Body interface{}

	// Headers override or extend the default headers.
	Headers map[string]string

	// Timeout overrides the client timeout for this request only.
	Timeout time.Duration

	// NoAuth marks a request as unauthenticated by nature; no Authorization
	// header is attached and a 401 is surfaced as a plain server error.
	NoAuth bool

	// WaitForNetwork blocks until connectivity returns instead of failing
	// fast with NO_INTERNET.
	WaitForNetwork bool
}

// NewREST creates a new REST transport.
func NewREST(opts *Options) *REST {
	if opts == nil {
		opts = &Options{}
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: types.DefaultTimeout,
		}
	}

	if opts.Network == nil {
		opts.Network = netstatus.New()
	}

	if opts.Tokens == nil {
		opts.Tokens = tokenstore.NewManager(nil)
	}

	cfg := opts.RetryConfig
	if cfg == nil {
		cfg = types.DefaultRetryConfig()
	}

	t := &REST{
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		httpClient:    opts.HTTPClient,
		tokens:        opts.Tokens,
		network:       opts.Network,
		refresh:       opts.Refresh,
		onAuthExpired: opts.OnAuthExpired,
		logger:        opts.Logger,
		hooks:         opts.Hooks,
		sentryEnabled: opts.SentryEnabled,
	}

	// Default headers
	headers := map[string]string{
		"Accept":       contentType,
		"Content-Type": contentType,
		"User-Agent":   types.UserAgent,
	}
	for k, v := range opts.Headers {
		headers[k] = v
	}
	t.headers = headers

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = opts.HTTPClient
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.RetryWait
	retryClient.RetryWaitMax = cfg.MaxWait
	retryClient.Backoff = retryablehttp.DefaultBackoff
	retryClient.CheckRetry = t.checkRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	if opts.Logger != nil {
		retryClient.Logger = &retryLogger{logger: opts.Logger}
		retryClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
			if attempt > 0 {
				opts.Logger.Warn("retrying request", "method", req.Method, "url", req.URL.String(), "attempt", attempt)
			}
		}
	}
	t.retryClient = retryClient

	return t
}

// Do resolves a logical operation against the endpoint map and executes it.
func (t *REST) Do(ctx context.Context, op string, pathParams map[string]string, opts *RequestOptions, result interface{}) error {
	ep, err := endpoints.Lookup(op)
	if err != nil {
		return types.NewSetupError(err)
	}

	path, err := endpoints.Resolve(ep.Path, pathParams)
	if err != nil {
		return types.NewSetupError(err)
	}

	return t.execute(ctx, ep.Method, path, opts, result, false)
}

// Execute issues a request against a raw path. Most callers go through Do.
func (t *REST) Execute(ctx context.Context, method, path string, opts *RequestOptions, result interface{}) error {
	return t.execute(ctx, method, path, opts, result, false)
}

// execute runs one request chain. refreshed guards the single token-refresh
// replay: a 401 on a replayed request never triggers another refresh.
func (t *REST) execute(ctx context.Context, method, path string, opts *RequestOptions, result interface{}, refreshed bool) error {
	if opts == nil {
		opts = &RequestOptions{}
	}

	// Pre-dispatch gate: known-offline requests never hit the network.
	if !t.network.Online() {
		if !opts.WaitForNetwork {
			return t.fail(ctx, method, path, types.NewOfflineError())
		}
		if err := t.network.AwaitOnline(ctx); err != nil {
			return t.fail(ctx, method, path, types.NewOfflineError())
		}
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	httpReq, err := t.buildRequest(ctx, method, path, opts)
	if err != nil {
		return t.fail(ctx, method, path, types.NewSetupError(err))
	}

	if t.hooks != nil && t.hooks.OnRequest != nil {
		t.hooks.OnRequest(ctx, httpReq)
	}

	if t.logger != nil {
		t.logger.Debug("API request", "method", method, "path", path)
	}

	start := time.Now()
	resp, err := t.doRequest(httpReq)
	duration := time.Since(start)

	if err != nil {
		return t.fail(ctx, method, path, t.classifyTransportError(err))
	}
	defer resp.Body.Close()

	if t.hooks != nil && t.hooks.OnResponse != nil {
		t.hooks.OnResponse(ctx, resp, duration)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return t.fail(ctx, method, path, types.NewNoResponseError(errors.Wrap(err, "failed to read response")))
	}

	if t.logger != nil {
		t.logger.Debug("API response", "method", method, "path", path, "status", resp.StatusCode, "duration", duration, "size", len(respBody))
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if result != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, result); err != nil {
				return t.fail(ctx, method, path, types.NewValidationError(errors.Wrap(err, "failed to parse response")))
			}
		}
		return nil
	}

	if resp.StatusCode == http.StatusUnauthorized && !opts.NoAuth {
		return t.handleUnauthorized(ctx, method, path, opts, result, respBody, refreshed)
	}

	return t.fail(ctx, method, path, types.NewServerError(resp.StatusCode, serverMessage(respBody), respBody))
}

// handleUnauthorized runs the refresh-and-replay cycle for an authenticated
// request that got a 401. At most one replay happens per request chain.
func (t *REST) handleUnauthorized(ctx context.Context, method, path string, opts *RequestOptions, result interface{}, respBody []byte, refreshed bool) error {
	if !refreshed && t.refresh != nil {
		newToken, err := t.refresh(ctx)
		if err == nil && newToken != "" {
			if serr := t.tokens.Set(newToken); serr == nil {
				return t.execute(ctx, method, path, opts, result, true)
			}
			// A storage failure while applying the refreshed token is an
			// auth failure too.
		}
		if t.logger != nil && err != nil {
			t.logger.Warn("token refresh failed", "error", err)
		}
	}

	t.expireAuth()
	return t.fail(ctx, method, path, types.NewAuthError(serverMessage(respBody), respBody))
}

// expireAuth clears the token and schedules the auth-expiry callback after a
// short delay so a caller-side notice can render first.
func (t *REST) expireAuth() {
	_ = t.tokens.Clear()

	if t.onAuthExpired != nil {
		cb := t.onAuthExpired
		time.AfterFunc(types.AuthExpiryNoticeDelay, cb)
	}
}

// buildRequest constructs the HTTP request with default headers and the
// bearer token. Any failure here means the request was never sent.
func (t *REST) buildRequest(ctx context.Context, method, path string, opts *RequestOptions) (*http.Request, error) {
	if t.baseURL == "" {
		return nil, errors.New("base URL is not configured")
	}

	fullURL := t.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(opts.Query) > 0 {
		fullURL += "?" + opts.Query.Encode()
	}

	var bodyReader io.Reader
	if opts.Body != nil {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request body")
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set(requestIDKey, uuid.New().String())

	if !opts.NoAuth {
		if token := t.tokens.Get(); token != "" {
			req.Header.Set(authHeaderKey, bearerScheme+token)
		}
	}

	return req, nil
}

// doRequest executes the HTTP request through the retry client.
func (t *REST) doRequest(req *http.Request) (*http.Response, error) {
	retryReq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, err
	}
	return t.retryClient.Do(retryReq)
}

// classifyTransportError normalizes a sent-but-unanswered request.
func (t *REST) classifyTransportError(err error) *types.APIError {
	if isTimeout(err) {
		return types.NewTimeoutError(err)
	}
	if !t.network.Online() {
		return types.NewOfflineError()
	}
	return types.NewNoResponseError(err)
}

// fail runs the terminal-error side effects: hooks, logging, Sentry capture.
func (t *REST) fail(ctx context.Context, method, path string, apiErr *types.APIError) error {
	if t.logger != nil {
		t.logger.Error("API request failed", "method", method, "path", path, "code", apiErr.Code, "status", apiErr.Status)
	}

	if t.hooks != nil && t.hooks.OnError != nil {
		t.hooks.OnError(ctx, apiErr)
	}

	if t.sentryEnabled {
		t.captureSentry(ctx, method, path, apiErr)
	}

	return apiErr
}

// captureSentry reports a terminal failure, preferring the hub bound to the
// request context.
func (t *REST) captureSentry(ctx context.Context, method, path string, apiErr *types.APIError) {
	configure := func(scope *sentry.Scope) {
		scope.SetTag("api.operation", method+" "+path)
		scope.SetTag("api.error_code", apiErr.Code)
		scope.SetContext("api", map[string]interface{}{
			"status":    apiErr.Status,
			"retryable": apiErr.Retryable,
		})
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			configure(scope)
			hub.CaptureException(apiErr)
		})
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		configure(scope)
		sentry.CaptureException(apiErr)
	})
}

// serverMessage extracts a display message from a server error payload.
// Both {"message": ...} and {"error": {"message": ...}} shapes occur.
func serverMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error.Message
}

// isTimeout reports whether a transport error is a timeout or connection abort.
func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

// retryLogger adapts our logger to retryablehttp
type retryLogger struct {
	logger types.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}
