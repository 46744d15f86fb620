package httpclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client  *resty.Client
	timeout time.Duration

	// withTimeout acquires the per-call handle; the returned cancel func releases it.
	withTimeout func(context.Context, time.Duration) (context.Context, context.CancelFunc)
}

// NewRestyClient creates a new RestyClient. timeout is the default applied to requests
// that do not carry their own; zero or negative selects DefaultTimeout.
func NewRestyClient(timeout time.Duration) *RestyClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RestyClient{
		client:      newRestyBaseClient(),
		timeout:     timeout,
		withTimeout: context.WithTimeout,
	}
}

// newRestyBaseClient creates a resty.Client that closes its connection after every request.
func newRestyBaseClient() *resty.Client {
	c := resty.New()
	c.SetCloseConnection(true)
	return c
}

// SetLogger routes resty's internal warnings to l. A zap SugaredLogger satisfies resty.Logger.
func (r *RestyClient) SetLogger(l resty.Logger) *RestyClient {
	if l != nil {
		r.client.SetLogger(l)
	}
	return r
}

// Do executes req against baseURL. The call is bounded by req.Timeout, or the client
// default, covering connect and read alike.
func (r *RestyClient) Do(ctx context.Context, baseURL string, req Request) (Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = r.timeout
	}

	callCtx, release := r.withTimeout(ctx, timeout)
	defer release()

	method := strings.ToUpper(req.Method)
	rr := r.client.R().
		SetContext(callCtx).
		SetHeaders(MergeHeaders(req.Headers))

	if req.HasBody() {
		body, err := encodeBody(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		rr.SetBody(body)
	}

	resp, err := rr.Execute(method, req.URL(baseURL))
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, req.Path, err)
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
