// Package httpclient is a small fasthttp client for JSON endpoints.
package httpclient

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/pkg/logger"
	"github.com/valyala/fasthttp"
)

const DefaultTimeout = 10 * time.Second

type Config struct {
	// Timeout bounds a single request, further capped by the context deadline.
	Timeout time.Duration

	// Headers are sent with every request.
	Headers map[string]string

	// Debug logs every request.
	Debug bool
}

type Client struct {
	baseURL *url.URL
	config  Config
	client  *fasthttp.Client
}

func New(baseURL string, config ...Config) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "can't parse base url")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.Wrapf(errs.InvalidArgument, "unsupported url scheme %q", parsed.Scheme)
	}

	var conf Config
	if len(config) > 0 {
		conf = config[0]
	}
	if conf.Timeout <= 0 {
		conf.Timeout = DefaultTimeout
	}
	return &Client{
		baseURL: parsed,
		config:  conf,
		client:  &fasthttp.Client{},
	}, nil
}

type Response struct {
	URL        string
	StatusCode int
	Body       []byte
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Do sends body to reqPath, relative to the base URL. A non-nil body is sent as JSON.
func (c *Client) Do(ctx context.Context, method, reqPath string, body []byte, header map[string]string) (*Response, error) {
	timeout := c.config.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, errors.Wrap(errs.Timeout, "context deadline exceeded before request")
		}
		timeout = min(timeout, remaining)
	}

	target := c.URL(reqPath)
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(target)
	req.Header.SetMethod(method)
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}

	start := time.Now()
	err := c.client.DoTimeout(req, resp, timeout)
	if c.config.Debug {
		logger.DebugContext(ctx, "Finished request",
			slog.String("package", "httpclient"),
			slog.String("method", method),
			slog.String("url", target),
			slog.Duration("latency", time.Since(start)),
			slog.Int("status", resp.StatusCode()),
		)
	}
	if err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			return nil, errors.Wrapf(errs.Timeout, "%s %s", method, target)
		}
		return nil, errors.Wrapf(err, "%s %s", method, target)
	}

	return &Response{
		URL:        target,
		StatusCode: resp.StatusCode(),
		Body:       append([]byte(nil), resp.Body()...),
	}, nil
}

// URL resolves p against the base URL.
func (c *Client) URL(p string) string {
	u := *c.baseURL
	if p != "" {
		u.Path = path.Join(u.Path, p)
	}
	return u.String()
}
