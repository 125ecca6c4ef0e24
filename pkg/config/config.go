// Package config loads ventriglisse settings.
//
// Settings come from, in increasing precedence:
//
//  1. [Default]
//  2. a TOML file (see [DefaultPath])
//  3. a .env file in the working directory
//  4. VENTRIGLISSE_* environment variables
//
// Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/ventriglisse/pkg/cache"
	"github.com/matzehuels/ventriglisse/pkg/diagnostics"
	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
	"github.com/matzehuels/ventriglisse/pkg/maze"
	"github.com/matzehuels/ventriglisse/pkg/moves"
)

// Config is the full configuration.
type Config struct {
	Remote      Remote      `toml:"remote"`
	Solve       Solve       `toml:"solve"`
	Layout      Layout      `toml:"layout"`
	Cache       Cache       `toml:"cache"`
	Diagnostics Diagnostics `toml:"diagnostics"`
	Server      Server      `toml:"server"`
}

// Remote configures the game server connection.
type Remote struct {
	Addr         string   `toml:"addr"`
	Timeout      Duration `toml:"timeout"` // per read/write deadline
	DialAttempts int      `toml:"dial_attempts"`
}

// Solve configures move encoding.
type Solve struct {
	Alphabet string `toml:"alphabet"` // name or four letters
}

// Layout mirrors maze.Layout.
type Layout struct {
	CellSize     int `toml:"cell_size"`
	BorderTop    int `toml:"border_top"`
	BorderRight  int `toml:"border_right"`
	BorderBottom int `toml:"border_bottom"`
	BorderLeft   int `toml:"border_left"`
}

// Cache selects the solve cache.
type Cache struct {
	Backend   string `toml:"backend"` // file, redis or none
	Dir       string `toml:"dir"`
	RedisAddr string `toml:"redis_addr"`
	Prefix    string `toml:"prefix"` // redis key namespace, scope of `cache clear`
	Scope     string `toml:"scope"`  // prepended to every key; change it to invalidate
}

// Diagnostics selects where failed mazes go.
type Diagnostics struct {
	Backend         string `toml:"backend"` // file, mongo or none
	Dir             string `toml:"dir"`
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// Server configures the HTTP API.
type Server struct {
	Listen string `toml:"listen"`
}

// Duration is a time.Duration written as "30s" in TOML.
type Duration struct{ time.Duration }

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	l := maze.DefaultLayout
	return Config{
		Remote: Remote{
			Addr:         "localhost:4242",
			Timeout:      Duration{30 * time.Second},
			DialAttempts: cache.DefaultBackoff.Attempts,
		},
		Solve: Solve{Alphabet: "default"},
		Layout: Layout{
			CellSize:     l.CellSize,
			BorderTop:    l.Border.Top,
			BorderRight:  l.Border.Right,
			BorderBottom: l.Border.Bottom,
			BorderLeft:   l.Border.Left,
		},
		Cache:       Cache{Backend: cache.BackendFile, Prefix: "ventriglisse:"},
		Diagnostics: Diagnostics{Backend: diagnostics.BackendFile, Dir: "diagnostics"},
		Server:      Server{Listen: ":8080"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/ventriglisse/config.toml (or the
// platform equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ventriglisse", "config.toml")
}

// Load builds the configuration. An explicit path must exist; when path is
// empty the default file is read if present.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return cfg, err
			}
		}
	}

	// A missing .env is normal.
	_ = godotenv.Load()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return verrors.Wrap(verrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return verrors.New(verrors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// Environment variables read by Load.
const (
	EnvAddr      = "VENTRIGLISSE_ADDR"
	EnvAlphabet  = "VENTRIGLISSE_ALPHABET"
	EnvListen    = "VENTRIGLISSE_LISTEN"
	EnvRedisAddr = "VENTRIGLISSE_REDIS_ADDR"
	EnvMongoURI  = "VENTRIGLISSE_MONGO_URI"
	EnvDiagDir   = "VENTRIGLISSE_DIAG_DIR"
	EnvBorderTop = "VENTRIGLISSE_BORDER_TOP"
)

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := []struct {
		key string
		dst *string
	}{
		{EnvAddr, &c.Remote.Addr},
		{EnvAlphabet, &c.Solve.Alphabet},
		{EnvListen, &c.Server.Listen},
		{EnvRedisAddr, &c.Cache.RedisAddr},
		{EnvMongoURI, &c.Diagnostics.MongoURI},
		{EnvDiagDir, &c.Diagnostics.Dir},
	}
	for _, s := range strs {
		if v, ok := lookup(s.key); ok && v != "" {
			*s.dst = v
		}
	}

	// Setting a backend address implies using that backend.
	if v, ok := lookup(EnvRedisAddr); ok && v != "" {
		c.Cache.Backend = cache.BackendRedis
	}
	if v, ok := lookup(EnvMongoURI); ok && v != "" {
		c.Diagnostics.Backend = diagnostics.BackendMongo
	}

	if v, ok := lookup(EnvBorderTop); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return verrors.Wrap(verrors.ErrCodeInvalidConfig, err, "%s must be an integer", EnvBorderTop)
		}
		c.Layout.BorderTop = n
	}
	return nil
}

// MazeLayout converts the layout section.
func (c Config) MazeLayout() maze.Layout {
	return maze.Layout{
		CellSize: c.Layout.CellSize,
		Border: maze.Border{
			Top:    c.Layout.BorderTop,
			Right:  c.Layout.BorderRight,
			Bottom: c.Layout.BorderBottom,
			Left:   c.Layout.BorderLeft,
		},
	}
}

// CacheOptions converts the cache section.
func (c Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:   c.Cache.Backend,
		Dir:       c.Cache.Dir,
		RedisAddr: c.Cache.RedisAddr,
		Prefix:    c.Cache.Prefix,
	}
}

// Keyer returns the cache keyer, scoped when cache.scope is set.
func (c Config) Keyer() cache.Keyer {
	if c.Cache.Scope == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), c.Cache.Scope)
}

// DiagnosticsOptions converts the diagnostics section.
func (c Config) DiagnosticsOptions() diagnostics.Options {
	return diagnostics.Options{
		Backend:    c.Diagnostics.Backend,
		Dir:        c.Diagnostics.Dir,
		MongoURI:   c.Diagnostics.MongoURI,
		Database:   c.Diagnostics.MongoDatabase,
		Collection: c.Diagnostics.MongoCollection,
	}
}

// Backoff returns the dial retry policy.
func (c Config) Backoff() cache.Backoff {
	return cache.Backoff{Attempts: c.Remote.DialAttempts, Delay: cache.DefaultBackoff.Delay}
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := verrors.ValidateAddr(c.Remote.Addr); err != nil {
		return verrors.Wrap(verrors.ErrCodeInvalidConfig, err, "remote.addr")
	}
	if err := verrors.ValidateAddr(c.Server.Listen); err != nil {
		return verrors.Wrap(verrors.ErrCodeInvalidConfig, err, "server.listen")
	}
	if c.Remote.Timeout.Duration < 0 {
		return verrors.New(verrors.ErrCodeInvalidConfig, "remote.timeout must not be negative")
	}
	if c.Remote.DialAttempts < 1 {
		return verrors.New(verrors.ErrCodeInvalidConfig, "remote.dial_attempts must be at least 1, got %d", c.Remote.DialAttempts)
	}
	if _, err := moves.ParseAlphabet(c.Solve.Alphabet); err != nil {
		return verrors.Wrap(verrors.ErrCodeInvalidConfig, err, "solve.alphabet")
	}
	if err := c.MazeLayout().Validate(); err != nil {
		return verrors.Wrap(verrors.ErrCodeInvalidConfig, err, "layout")
	}
	switch c.Cache.Backend {
	case cache.BackendFile, cache.BackendNone:
	case cache.BackendRedis:
		if c.Cache.RedisAddr == "" {
			return verrors.New(verrors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	default:
		return verrors.New(verrors.ErrCodeInvalidConfig, "unknown cache.backend %q", c.Cache.Backend)
	}
	switch c.Diagnostics.Backend {
	case diagnostics.BackendFile, diagnostics.BackendNone:
	case diagnostics.BackendMongo:
		if c.Diagnostics.MongoURI == "" {
			return verrors.New(verrors.ErrCodeInvalidConfig, "diagnostics.mongo_uri is required for the mongo backend")
		}
	default:
		return verrors.New(verrors.ErrCodeInvalidConfig, "unknown diagnostics.backend %q", c.Diagnostics.Backend)
	}
	return nil
}

// String renders the configuration as TOML.
func (c Config) String() string {
	b, err := toml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(b)
}
