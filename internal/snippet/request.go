package snippet

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultDuration is how long, in minutes, the service keeps a snippet.
const DefaultDuration = 1440

// Request is one upload. It is built per invocation and discarded after.
type Request struct {
	Title           string
	Content         string
	APIKey          string
	DurationMinutes int
}

// EncodeTitle percent-encodes the UTF-8 bytes of title. Spaces become %20.
func EncodeTitle(title string) string {
	return strings.ReplaceAll(url.QueryEscape(title), "+", "%20")
}

// URL appends the api_key, duration and title parameters to endpoint,
// after any query the endpoint already carries.
func (r Request) URL(endpoint string) (string, error) {
	if r.Content == "" {
		return "", ErrEmptyContent
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("endpoint %q: %w", endpoint, err)
	}
	duration := r.DurationMinutes
	if duration <= 0 {
		duration = DefaultDuration
	}
	query := "api_key=" + url.QueryEscape(r.APIKey) +
		"&duration=" + strconv.Itoa(duration) +
		"&title=" + EncodeTitle(r.Title)
	if u.RawQuery != "" {
		query = u.RawQuery + "&" + query
	}
	u.RawQuery = query
	return u.String(), nil
}

// Body is the raw content as sent on the wire.
func (r Request) Body() []byte { return []byte(r.Content) }
