package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner runs an external program with stdin attached and returns its
// standard output.
type Runner func(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, error)

// Curl posts by spawning the curl binary, for hosts where the in-process
// client cannot get through (proxies, broken TLS stores).
type Curl struct {
	Path      string
	UserAgent string

	run Runner
}

func NewCurl(path, userAgent string) *Curl {
	if path == "" {
		path = "curl"
	}
	return &Curl{Path: path, UserAgent: userAgent, run: execRunner}
}

func (c *Curl) Name() string { return "curl" }

// Args is the curl command line for a post to target. The body is read
// from stdin, byte for byte, so its size is not bounded by argv limits.
func (c *Curl) Args(target string) []string {
	args := []string{"--silent", "--show-error", "-X", "POST", target}
	if c.UserAgent != "" {
		args = append(args, "-H", "User-Agent: "+c.UserAgent)
	}
	return append(args, "--data-binary", "@-")
}

func (c *Curl) Post(ctx context.Context, target string, body []byte) Result {
	out, err := c.run(ctx, bytes.NewReader(body), c.Path, c.Args(target)...)
	if err != nil {
		return Fail(fmt.Errorf("curl: %w", err))
	}
	u, err := ParseURL(out)
	if err != nil {
		return Fail(fmt.Errorf("curl: %w", err))
	}
	return Ok(u)
}

func execRunner(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, fmt.Errorf("%s not found: %w", name, err)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return out, fmt.Errorf("exit %d: %s", ee.ExitCode(), msg)
			}
			return out, fmt.Errorf("exit %d", ee.ExitCode())
		}
		return out, err
	}
	return out, nil
}
