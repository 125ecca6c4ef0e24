package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/ventriglisse/pkg/cache"
	"github.com/matzehuels/ventriglisse/pkg/diagnostics"
	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
	"github.com/matzehuels/ventriglisse/pkg/maze"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, maze.DefaultLayout, cfg.MazeLayout())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[remote]
addr = "maze.example.org:9999"
timeout = "5s"
dial_attempts = 5

[solve]
alphabet = "french"

[layout]
border_top = 2

[cache]
backend = "none"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "maze.example.org:9999", cfg.Remote.Addr)
	assert.Equal(t, 5*time.Second, cfg.Remote.Timeout.Duration)
	assert.Equal(t, 5, cfg.Backoff().Attempts)
	assert.Equal(t, "french", cfg.Solve.Alphabet)
	assert.Equal(t, 2, cfg.MazeLayout().Border.Top)
	assert.Equal(t, 1, cfg.MazeLayout().Border.Left, "unset keys keep their defaults")
	assert.Equal(t, cache.BackendNone, cfg.CacheOptions().Backend)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[remote\naddr = 1"},
		{"unknown key", "[remote]\nport = 1\n"},
		{"bad duration", "[remote]\ntimeout = \"soon\"\n"},
		{"bad alphabet", "[solve]\nalphabet = \"NNSE\"\n"},
		{"zero top border", "[layout]\nborder_top = 0\n"},
		{"redis without addr", "[cache]\nbackend = \"redis\"\n"},
		{"mongo without uri", "[diagnostics]\nbackend = \"mongo\"\n"},
		{"unknown backend", "[cache]\nbackend = \"memcached\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	t.Run("validation code", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[remote]\ndial_attempts = 0\n"))
		assert.True(t, verrors.Is(err, verrors.ErrCodeInvalidConfig), "err = %v", err)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Error(t, err)
	})
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvAddr:      "10.0.0.1:4242",
		EnvAlphabet:  "NSEO",
		EnvRedisAddr: "redis:6379",
		EnvMongoURI:  "mongodb://mongo:27017",
		EnvBorderTop: "2",
		EnvListen:    "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.applyEnv(lookup))

	assert.Equal(t, "10.0.0.1:4242", cfg.Remote.Addr)
	assert.Equal(t, "NSEO", cfg.Solve.Alphabet)
	assert.Equal(t, ":8080", cfg.Server.Listen, "empty values are ignored")
	assert.Equal(t, cache.BackendRedis, cfg.Cache.Backend)
	assert.Equal(t, diagnostics.BackendMongo, cfg.Diagnostics.Backend)
	assert.Equal(t, 2, cfg.Layout.BorderTop)
	assert.NoError(t, cfg.Validate())

	env[EnvBorderTop] = "two"
	err := cfg.applyEnv(lookup)
	assert.True(t, verrors.Is(err, verrors.ErrCodeInvalidConfig))
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv(EnvAddr, "from-env:1")
	cfg, err := Load(writeConfig(t, "[remote]\naddr = \"from-file:1\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-env:1", cfg.Remote.Addr)
}

func TestKeyer(t *testing.T) {
	cfg := Default()
	opts := cache.MovesKeyOpts{Alphabet: "default", Layout: maze.DefaultLayout}
	plain := cfg.Keyer().MovesKey("abc", opts)

	cfg.Cache.Scope = "v2:"
	assert.Equal(t, "v2:"+plain, cfg.Keyer().MovesKey("abc", opts))
}

func TestString(t *testing.T) {
	s := Default().String()
	assert.Contains(t, s, "[remote]")
	assert.Contains(t, s, `timeout = "30s"`)
}
