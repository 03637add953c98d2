package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/rfhold/partpick/internal/pcpp"
)

const (
	DefaultBackendURL = "http://localhost:8000"
	DefaultTimeout    = 10 * time.Second
	DefaultRegion     = "us"

	// Environment variables consulted by Load
	EnvBackendURL = "PARTPICK_BACKEND_URL"
	EnvTimeout    = "PARTPICK_TIMEOUT"
	EnvRegion     = "PARTPICK_REGION"
	// envLegacyBackendURL is read from .env files written for the web front end
	envLegacyBackendURL = "VITE_BACKEND_URL"

	fileName = "config.toml"
	appDir   = "partpick"
)

var ErrInvalidConfig = errors.New("invalid config")

// Duration decodes TOML strings such as "10s"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the resolved client configuration
type Config struct {
	BackendURL string   `toml:"backend_url"`
	Timeout    Duration `toml:"timeout"`
	Region     string   `toml:"region"`
	Debug      bool     `toml:"debug"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		BackendURL: DefaultBackendURL,
		Timeout:    Duration{DefaultTimeout},
		Region:     DefaultRegion,
	}
}

// Options controls where Load looks for configuration
type Options struct {
	// Path is an explicit config file; it must exist when set
	Path string
	// Dir is searched for a .env file; empty means the working directory
	Dir string
	// Getenv reads the process environment; nil uses os.Getenv
	Getenv func(string) string
}

// DefaultPath returns $XDG_CONFIG_HOME/partpick/config.toml (or the platform equivalent)
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Load resolves configuration: environment (including .env) over file over defaults.
// It returns the config file path that was used, or "" if none.
func Load(opts Options) (*Config, string, error) {
	cfg := Default()

	path, err := resolvePath(opts.Path)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, "", err
		}
	}

	env, err := newEnv(opts)
	if err != nil {
		return nil, "", err
	}
	if err := cfg.applyEnv(env); err != nil {
		return nil, "", err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// resolvePath returns the file to decode, or "" when an implicit file does not exist
func resolvePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	path, err := DefaultPath()
	if err != nil {
		return "", nil
	}
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	return path, nil
}

func decodeFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %s: unknown key %q", ErrInvalidConfig, path, undecoded[0].String())
	}
	return nil
}

// env layers the process environment over a .env file
type env struct {
	getenv func(string) string
	dotenv map[string]string
}

func newEnv(opts Options) (*env, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	dotenv, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading .env: %w", err)
		}
		dotenv = map[string]string{}
	}
	return &env{getenv: getenv, dotenv: dotenv}, nil
}

func (e *env) lookup(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(e.getenv(k)); v != "" {
			return v
		}
	}
	for _, k := range keys {
		if v := strings.TrimSpace(e.dotenv[k]); v != "" {
			return v
		}
	}
	return ""
}

func (c *Config) applyEnv(e *env) error {
	if v := e.lookup(EnvBackendURL, envLegacyBackendURL); v != "" {
		c.BackendURL = v
	}
	if v := e.lookup(EnvRegion); v != "" {
		c.Region = v
	}
	if v := e.lookup(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvTimeout, err)
		}
		c.Timeout = Duration{d}
	}
	return nil
}

// Overrides are command-line values; zero values leave the config unchanged
type Overrides struct {
	BackendURL string
	Region     string
	Timeout    time.Duration
	Debug      bool
}

// Apply layers command-line overrides on top and re-validates
func (c *Config) Apply(o Overrides) error {
	if o.BackendURL != "" {
		c.BackendURL = o.BackendURL
	}
	if o.Region != "" {
		c.Region = o.Region
	}
	if o.Timeout > 0 {
		c.Timeout = Duration{o.Timeout}
	}
	if o.Debug {
		c.Debug = true
	}
	return c.Validate()
}

// Validate checks field values
func (c *Config) Validate() error {
	c.BackendURL = strings.TrimSpace(c.BackendURL)
	if c.BackendURL == "" {
		return fmt.Errorf("%w: backend_url is empty", ErrInvalidConfig)
	}
	if c.Timeout.Duration <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}
	c.Region = strings.ToLower(strings.TrimSpace(c.Region))
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if !pcpp.ValidRegion(c.Region) {
		return fmt.Errorf("%w: region %q is not a two-letter code", ErrInvalidConfig, c.Region)
	}
	return nil
}
