package transport

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoURL means the service answered but the body carries no url.
var ErrNoURL = errors.New("response has no url")

type pasteResponse struct {
	URL      string `json:"url"`
	Result   string `json:"result"`
	ErrorMsg string `json:"error_msg"`
}

// ParseURL extracts the "url" field from a JSON response body. Error replies
// of the form {"result": "error", "error_msg": "..."} keep their message.
func ParseURL(body []byte) (string, error) {
	var resp pasteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if resp.URL == "" {
		if resp.ErrorMsg != "" {
			return "", fmt.Errorf("%w: %s", ErrNoURL, resp.ErrorMsg)
		}
		return "", ErrNoURL
	}
	return resp.URL, nil
}
