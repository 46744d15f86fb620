// Package petapi is a typed client for the pet-monitoring backend. Every endpoint
// performs one round trip, unwraps the response envelope and reports failures as *Error.
package petapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/wxtcc/petcare-client/pkg/httpclient"
)

// DefaultBaseURL is the production origin.
const DefaultBaseURL = "https://place.wxtcc.com.cn"

// Options configures a Client. Zero values select defaults.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient httpclient.Client
	Logger     Logger
}

// Client issues requests to the backend. It holds no per-call state and is safe for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration
	http    httpclient.Client
	log     Logger
}

// New builds a Client from opts.
func New(opts Options) *Client {
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = httpclient.DefaultTimeout
	}
	transport := opts.HTTPClient
	if transport == nil {
		transport = httpclient.NewRestyClient(timeout)
	}
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		http:    transport,
		log:     ensureLogger(opts.Logger),
	}
}

// BaseURL returns the origin requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// call runs req and unwraps the envelope into T. It is the only place transport
// and decode failures are translated into *Error.
func call[T any](ctx context.Context, c *Client, req httpclient.Request) (T, error) {
	var zero T
	if c == nil {
		return zero, unknownError(errors.New("client is nil"))
	}
	if req.Timeout <= 0 {
		req.Timeout = c.timeout
	}

	start := time.Now()
	resp, err := c.http.Do(ctx, c.baseURL, req)
	if err != nil {
		apiErr := asError(err)
		c.log.WarnObj("request failed", "request_meta", map[string]any{
			"method":     req.Method,
			"path":       req.Path,
			"code":       apiErr.Code,
			"error":      err.Error(),
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
		return zero, apiErr
	}

	meta := map[string]any{
		"method":     req.Method,
		"path":       req.Path,
		"status":     resp.StatusCode(),
		"elapsed_ms": time.Since(start).Milliseconds(),
	}
	env, err := decodeResponse[T](resp)
	if err != nil {
		meta["error"] = err.Error()
		c.log.WarnObj("request failed", "request_meta", meta)
		return zero, err
	}
	if env.Code != SuccessCode {
		c.log.DebugObj("envelope carries non-success code", "envelope_meta", map[string]any{
			"path":    req.Path,
			"code":    env.Code,
			"message": env.Message,
		})
	}
	c.log.DebugObj("request completed", "request_meta", meta)
	return env.Data, nil
}

// query builds a request whose parameters travel in the query string.
func query(method, path string, params any) (httpclient.Request, error) {
	bag, err := toParams(params)
	if err != nil {
		return httpclient.Request{}, unknownError(err)
	}
	return httpclient.Request{Method: method, Path: path, Query: bag}, nil
}

func get[T any](ctx context.Context, c *Client, path string, params any) (T, error) {
	return send[T](ctx, c, http.MethodGet, path, params)
}

func post[T any](ctx context.Context, c *Client, path string, params any) (T, error) {
	return send[T](ctx, c, http.MethodPost, path, params)
}

func send[T any](ctx context.Context, c *Client, method, path string, params any) (T, error) {
	req, err := query(method, path, params)
	if err != nil {
		var zero T
		return zero, err
	}
	return call[T](ctx, c, req)
}
