package app

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"sigs.k8s.io/yaml"

	"github.com/gilliginsisland/nexd/pkg/env"
	"github.com/gilliginsisland/nexd/pkg/flagutil"
	"github.com/gilliginsisland/nexd/pkg/nex"
)

const (
	DefaultPort    = 1900
	DefaultDocroot = "./docroot"
)

// PreflightError reports a document root that cannot be served. It is
// returned before any socket is opened.
type PreflightError struct {
	Docroot string
}

func (e *PreflightError) Error() string {
	return "no such directory: " + e.Docroot
}

// Config is the server configuration. It is assembled once at startup from
// defaults, an optional config file, the environment and the command line,
// in that order, and not changed afterwards.
type Config struct {
	Port    int           `json:"port" toml:"port" env:"NEXD_PORT"`
	Docroot flagutil.Path `json:"docroot" toml:"docroot" env:"NEXD_DOCROOT"`
	// Contained refuses requests that resolve outside Docroot.
	Contained bool `json:"contained" toml:"contained" env:"NEXD_CONTAINED"`
	// ParentEntry lists "../" in every directory listing.
	ParentEntry bool `json:"parent_entry" toml:"parent_entry" env:"NEXD_PARENT_ENTRY"`
	// Timeout bounds each client exchange; zero waits forever.
	Timeout flagutil.Duration `json:"timeout" toml:"timeout" env:"NEXD_TIMEOUT"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Port:    DefaultPort,
		Docroot: DefaultDocroot,
	}
}

// ParseConfigFile decodes path on top of c. Files ending in .toml are TOML,
// anything else is YAML (which includes JSON). Unknown keys are an error.
func ParseConfigFile(path flagutil.Path, c *Config) error {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(string(path)), ".toml") {
		md, err := toml.Decode(string(data), c)
		if err != nil {
			return fmt.Errorf("failed to load config file: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			slices.Sort(keys)
			return fmt.Errorf("failed to load config file: unknown keys %s", strings.Join(keys, ", "))
		}
		return nil
	}

	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}
	return nil
}

// LoadEnv applies NEXD_* variables from environ on top of c.
func (c *Config) LoadEnv(environ []string) error {
	return env.Unmarshal(c, environ)
}

// Normalize validates c and makes Docroot absolute.
func (c *Config) Normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	if c.Docroot == "" {
		c.Docroot = DefaultDocroot
	}
	abs, err := c.Docroot.Abs()
	if err != nil {
		return err
	}
	c.Docroot = abs
	return nil
}

// Preflight checks that the document root is an existing directory.
func (c *Config) Preflight() error {
	fi, err := os.Stat(string(c.Docroot))
	if err != nil || !fi.IsDir() {
		return &PreflightError{Docroot: string(c.Docroot)}
	}
	return nil
}

// Server builds the connection loop described by c.
func (c *Config) Server() *nex.Server {
	return &nex.Server{
		Resolver: nex.Resolver{
			Root:      string(c.Docroot),
			Contained: c.Contained,
		},
		Dispatcher: nex.Dispatcher{
			Lister: nex.Lister{ParentEntry: c.ParentEntry},
		},
		Timeout: c.Timeout.Duration,
	}
}
