// Package transport posts a snippet to the paste service. Each way of reaching
// the service is an Attempt that reports a Result instead of raising.
package transport

import (
	"context"
	"net/url"
	"strings"
)

// Result is the outcome of a single attempt: a URL or the reason there is none.
type Result struct {
	URL string
	Err error
}

func Ok(url string) Result { return Result{URL: url} }

func Fail(err error) Result { return Result{Err: err} }

// OK reports whether the attempt produced a usable URL.
func (r Result) OK() bool { return r.Err == nil && r.URL != "" }

// Attempt posts body to target and never panics or returns a bare error.
type Attempt interface {
	Name() string
	Post(ctx context.Context, target string, body []byte) Result
}

// Redact masks the api_key query parameter for logging.
func Redact(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		return "<invalid url>"
	}
	params := strings.Split(u.RawQuery, "&")
	for i, p := range params {
		if strings.HasPrefix(p, "api_key=") && p != "api_key=" {
			params[i] = "api_key=***"
		}
	}
	u.RawQuery = strings.Join(params, "&")
	return u.String()
}
