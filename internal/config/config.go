package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v6"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"pastery/internal/snippet"
	"pastery/internal/transport"
)

const DefaultEndpoint = "https://www.pastery.net/api/paste/"

// ErrMissingAPIKey is returned by Validate when no api key was configured.
var ErrMissingAPIKey = errors.New("api_key is not set")

type Config struct {
	APIKey    string
	Duration  int // minutes
	Endpoint  string
	UserAgent string
	Curl      string
	Theme     string // auto|dark|light
}

func Default() Config {
	return Config{
		Duration:  snippet.DefaultDuration,
		Endpoint:  DefaultEndpoint,
		UserAgent: transport.DefaultUserAgent,
		Curl:      "curl",
		Theme:     "auto",
	}
}

// envOverrides are applied after the config file.
type envOverrides struct {
	APIKey   string `env:"PASTERY_API_KEY"`
	Duration string `env:"PASTERY_DURATION"`
	Endpoint string `env:"PASTERY_ENDPOINT"`
}

// Dir is $XDG_CONFIG_HOME/pastery, or ~/.config/pastery.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "pastery"), nil
}

func defaultPaths() ([]string, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return []string{
		filepath.Join(dir, "config.yml"),
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.toml"),
	}, nil
}

// Load overlays the config file and then the environment onto Default().
// An empty path searches the default locations; a missing default file is
// not an error, a missing explicit one is.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := readFile(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.overlay(raw); err != nil {
		return cfg, err
	}
	if err := cfg.overlayEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readFile(path string) (map[string]any, error) {
	if path != "" {
		path = ExpandUser(path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return decode(path, data)
	}
	paths, err := defaultPaths()
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		return decode(p, data)
	}
	return nil, nil
}

// decode reads TOML by extension and YAML otherwise. YAML also covers JSON
// settings files.
func decode(path string, data []byte) (map[string]any, error) {
	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return raw, nil
}

func (c *Config) overlay(raw map[string]any) error {
	for key, v := range raw {
		switch key {
		case "api_key":
			c.APIKey = asString(v)
		case "duration":
			d, err := asMinutes(v)
			if err != nil {
				return err
			}
			c.Duration = d
		case "endpoint":
			if s := asString(v); s != "" {
				c.Endpoint = s
			}
		case "user_agent":
			if s := asString(v); s != "" {
				c.UserAgent = s
			}
		case "curl":
			if s := asString(v); s != "" {
				c.Curl = ExpandUser(s)
			}
		case "theme":
			if s := asString(v); s != "" {
				c.Theme = s
			}
		}
	}
	return nil
}

func (c *Config) overlayEnv() error {
	var e envOverrides
	if err := env.Parse(&e); err != nil {
		return err
	}
	if e.APIKey != "" {
		c.APIKey = e.APIKey
	}
	if e.Duration != "" {
		d, err := asMinutes(e.Duration)
		if err != nil {
			return err
		}
		c.Duration = d
	}
	if e.Endpoint != "" {
		c.Endpoint = e.Endpoint
	}
	return nil
}

func asString(v any) string {
	switch vv := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(vv)
	default:
		return fmt.Sprint(vv)
	}
}

// asMinutes accepts the duration as a number or as a numeric string.
func asMinutes(v any) (int, error) {
	switch vv := v.(type) {
	case int:
		return vv, nil
	case int64:
		return int(vv), nil
	case uint64:
		return int(vv), nil
	case float64:
		if vv != math.Trunc(vv) {
			return 0, fmt.Errorf("duration: %v is not a whole number of minutes", vv)
		}
		return int(vv), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(vv))
		if err != nil {
			return 0, fmt.Errorf("duration: %q is not a number of minutes", vv)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("duration: unsupported value %v", v)
	}
}

// Validate checks what the paste service needs before anything is sent.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: add api_key to the config file or set PASTERY_API_KEY", ErrMissingAPIKey)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %d", c.Duration)
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q", c.Endpoint)
	}
	return nil
}

// ExpandUser expands a path starting with ~ to the user's home.
func ExpandUser(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}
