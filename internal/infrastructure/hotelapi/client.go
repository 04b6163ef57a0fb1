// Package hotelapi is the HTTP client for the hotel backend's reservation,
// auth and member endpoints.
package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/oceanview/internal/internaltypes"
)

const defaultBaseURL = "http://localhost:8080/api"
const defaultUA = "oceanview/1.0"

// Client calls the backend rooted at an API base such as http://host:8080/api.
// It never retries and sets no timeout of its own; callers bound calls with ctx.
type Client struct {
	http *http.Client
	log  *zap.Logger

	base string
	ua   string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	c := &Client{
		http: &http.Client{},
		log:  zap.NewNop(),
		base: strings.TrimRight(base, "/"),
		ua:   defaultUA,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.base }

// Error is a failed backend call. It matches internaltypes.ErrRequestFailed or
// internaltypes.ErrNotFound under errors.Is.
type Error struct {
	Op     string
	Status int // 0 when the request never got a response
	Body   string
	Err    error

	kind error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Status != 0 {
		msg += fmt.Sprintf(": http %d", e.Status)
	}
	switch {
	case e.Err != nil:
		msg += ": " + e.Err.Error()
	case e.Body != "":
		msg += ": " + e.Body
	}
	return msg
}

func (e *Error) Unwrap() []error {
	out := []error{e.kind}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

func requestFailed(op string, status int, body []byte, err error) *Error {
	return &Error{Op: op, Status: status, Body: trimBody(body), Err: err, kind: internaltypes.ErrRequestFailed}
}

func notFound(op string, status int, body []byte) *Error {
	return &Error{Op: op, Status: status, Body: trimBody(body), kind: internaltypes.ErrNotFound}
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

func (c *Client) do(ctx context.Context, method, path string, in any) (int, []byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(b)
	}
	url := c.base + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("user-agent", c.ua)
	if in != nil {
		req.Header.Set("content-type", "application/json")
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("hotel api request failed", zap.String("method", method), zap.String("url", url), zap.Error(err))
		return 0, nil, err
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	c.log.Debug("hotel api request",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", res.StatusCode),
		zap.Duration("took", time.Since(start)))
	if err != nil {
		return res.StatusCode, nil, err
	}
	return res.StatusCode, b, nil
}

func ok(status int) bool { return status >= 200 && status < 300 }

func trimBody(b []byte) string {
	const limit = 512
	s := strings.TrimSpace(string(b))
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return s
}
