package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config search at an empty directory and clears the
// environment overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("PASTERY_API_KEY", "")
	t.Setenv("PASTERY_DURATION", "")
	t.Setenv("PASTERY_ENDPOINT", "")
	return filepath.Join(dir, "pastery")
}

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 1440, cfg.Duration)
	assert.Equal(t, "https://www.pastery.net/api/paste/", cfg.Endpoint)
	assert.Equal(t, "Mozilla/5.0 (Sublime Text) Pastery plugin", cfg.UserAgent)
}

func TestLoad_YAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "config.yml", "api_key: abc\nduration: \"60\"\ntheme: light\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.APIKey)
	assert.Equal(t, 60, cfg.Duration)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
}

func TestLoad_TOML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "config.toml", "api_key = \"abc\"\nduration = 90\ncurl = \"/opt/bin/curl\"\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.APIKey)
	assert.Equal(t, 90, cfg.Duration)
	assert.Equal(t, "/opt/bin/curl", cfg.Curl)
}

func TestLoad_SettingsJSON(t *testing.T) {
	isolate(t)
	p := writeConfig(t, t.TempDir(), "Pastery.sublime-settings", `{"api_key": "abc", "duration": "1440"}`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.APIKey)
	assert.Equal(t, 1440, cfg.Duration)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "config.yml", "api_key: from-file\nduration: 60\n")
	t.Setenv("PASTERY_API_KEY", "from-env")
	t.Setenv("PASTERY_DURATION", "30")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, 30, cfg.Duration)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeConfig(t, dir, "bad.yml", "duration: soon\n")
	_, err = Load(bad)
	assert.Error(t, err)

	broken := writeConfig(t, dir, "broken.toml", "api_key = \n")
	_, err = Load(broken)
	assert.Error(t, err)

	t.Setenv("PASTERY_DURATION", "forever")
	_, err = Load("")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)

	cfg.APIKey = "abc"
	assert.NoError(t, cfg.Validate())

	cfg.Duration = 0
	assert.Error(t, cfg.Validate())

	cfg.Duration = 10
	cfg.Endpoint = "not a url"
	assert.Error(t, cfg.Validate())
}

func TestAsMinutes(t *testing.T) {
	for _, v := range []any{1440, int64(1440), uint64(1440), float64(1440), "1440", " 1440 "} {
		got, err := asMinutes(v)
		require.NoError(t, err, "%#v", v)
		assert.Equal(t, 1440, got)
	}
	_, err := asMinutes(1.5)
	assert.Error(t, err)
	_, err = asMinutes([]string{"x"})
	assert.Error(t, err)
}

func TestExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, home, ExpandUser("~"))
	assert.Equal(t, filepath.Join(home, "bin", "curl"), ExpandUser("~/bin/curl"))
	assert.Equal(t, "/usr/bin/curl", ExpandUser("/usr/bin/curl"))
	assert.Equal(t, "", ExpandUser(""))
}
