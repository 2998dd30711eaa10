package transport

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is what the service expects from editor plugins.
const DefaultUserAgent = "Mozilla/5.0 (Sublime Text) Pastery plugin"

// StatusError is a reply with a status other than 200.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// Native posts with an in-process HTTP client.
type Native struct {
	client *resty.Client
}

func NewNative(userAgent string) *Native {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	client := resty.New()
	client.SetHeader("User-Agent", userAgent)
	return &Native{client: client}
}

func (n *Native) Name() string { return "native" }

func (n *Native) Post(ctx context.Context, target string, body []byte) Result {
	res, err := n.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(target)
	if err != nil {
		return Fail(fmt.Errorf("post: %w", err))
	}
	if res.StatusCode() != http.StatusOK {
		return Fail(&StatusError{Code: res.StatusCode(), Body: truncate(string(res.Body()), 200)})
	}
	u, err := ParseURL(res.Body())
	if err != nil {
		return Fail(err)
	}
	return Ok(u)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
