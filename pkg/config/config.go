// Package config loads the mermaidkit configuration file.
//
// The default file is $XDG_CONFIG_HOME/mermaidkit/config.toml. Any path
// ending in .toml, .yaml or .yml can be passed instead. A missing default
// file yields [Default]; a missing explicit file is an error.
//
//	[render]
//	server = "https://mermaid.ink"
//	timeout = "30s"
//	attempts = 3
//	ttl = "168h"
//
//	[cache]
//	backend = "file"        # file | redis | none
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[store]
//	backend = "file"        # file | mongo
//
//	[store.mongo]
//	uri = "mongodb://localhost:27017"
//
//	[server]
//	addr = ":8080"
//
// $MERMAID_INK_SERVER overrides render.server.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/mermaidkit/pkg/errors"
	"github.com/matzehuels/mermaidkit/pkg/render/ink"
)

// Backend names.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
	BackendMongo = "mongo"
)

// Duration is a time.Duration written as "30s" in config files.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Config is the complete configuration.
type Config struct {
	Render RenderConfig `toml:"render" yaml:"render"`
	Cache  CacheConfig  `toml:"cache" yaml:"cache"`
	Store  StoreConfig  `toml:"store" yaml:"store"`
	Server ServerConfig `toml:"server" yaml:"server"`
}

type RenderConfig struct {
	Server   string   `toml:"server" yaml:"server"`
	Timeout  Duration `toml:"timeout" yaml:"timeout"`
	Attempts int      `toml:"attempts" yaml:"attempts"`
	TTL      Duration `toml:"ttl" yaml:"ttl"`
}

type CacheConfig struct {
	Backend string      `toml:"backend" yaml:"backend"`
	Dir     string      `toml:"dir,omitempty" yaml:"dir,omitempty"`
	Redis   RedisConfig `toml:"redis" yaml:"redis"`
	// Prefix namespaces cache keys, for a Redis shared with other apps.
	Prefix string `toml:"prefix,omitempty" yaml:"prefix,omitempty"`
}

type RedisConfig struct {
	Addr     string `toml:"addr" yaml:"addr"`
	Password string `toml:"password,omitempty" yaml:"password,omitempty"`
	DB       int    `toml:"db" yaml:"db"`
}

type StoreConfig struct {
	Backend string      `toml:"backend" yaml:"backend"`
	Dir     string      `toml:"dir,omitempty" yaml:"dir,omitempty"`
	Mongo   MongoConfig `toml:"mongo" yaml:"mongo"`
}

type MongoConfig struct {
	URI        string `toml:"uri" yaml:"uri"`
	Database   string `toml:"database" yaml:"database"`
	Collection string `toml:"collection" yaml:"collection"`
}

type ServerConfig struct {
	Addr string `toml:"addr" yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Server:   ink.DefaultServer,
			Timeout:  Duration(30 * time.Second),
			Attempts: 3,
			TTL:      Duration(ink.DefaultTTL),
		},
		Cache: CacheConfig{
			Backend: BackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		Store: StoreConfig{
			Backend: BackendFile,
			Mongo: MongoConfig{
				URI:        "mongodb://localhost:27017",
				Database:   "mermaidkit",
				Collection: "diagrams",
			},
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "locate config dir")
	}
	return filepath.Join(dir, "mermaidkit", "config.toml"), nil
}

// Load reads path over [Default], applies the environment and validates
// the result. An empty path loads the default file if it exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err) && !explicit:
	case os.IsNotExist(err):
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	case err != nil:
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	default:
		if err := decode(data, path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte, path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return errors.New(errors.ErrCodeInvalidExtension, "config file must be .toml, .yaml or .yml, got %q", filepath.Ext(path))
	}
	return nil
}

func (c *Config) applyEnv() {
	if s := strings.TrimSpace(os.Getenv(ink.EnvServer)); s != "" {
		c.Render.Server = s
	}
}

// Validate checks backends, attempts and the server URL.
func (c *Config) Validate() error {
	if err := errors.ValidateServerURL(strings.TrimRight(c.Render.Server, "/")); err != nil {
		return err
	}
	if c.Render.Attempts < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "render.attempts must be positive, got %d", c.Render.Attempts)
	}
	if c.Render.Timeout < 0 || c.Render.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render durations cannot be negative")
	}
	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.Redis.Addr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis.addr is required")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	switch c.Store.Backend {
	case BackendFile:
	case BackendMongo:
		if c.Store.Mongo.URI == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "store.mongo.uri is required")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", c.Store.Backend)
	}
	return nil
}

// Encode writes c to w as TOML, or as YAML when format is "yaml".
func (c *Config) Encode(w io.Writer, format string) error {
	if format == "yaml" || format == "yml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
		return enc.Close()
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
	}
	_, err := w.Write(buf.Bytes())
	return err
}
