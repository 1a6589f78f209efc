// Package runtimecfg loads the ember host's YAML configuration file,
// grounded on the teacher's internal/ext.Config (LoadConfig/ParseConfig,
// validate-then-setDefaults) but scoped to this module's much smaller
// ambient surface: where scripts live, which host extensions to wire, and
// where their backing resources (a KVStore file, proto import paths) are.
package runtimecfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level ember.yaml shape.
type Config struct {
	// Entry names a script file. It is parsed and kept on the Config, but
	// cmd/emberi does not run it: its demo program is built directly in Go.
	Entry string `yaml:"entry"`

	// Color controls ANSI highlighting in `print`; "auto" defers to the
	// host's TTY detection (mattn/go-isatty).
	Color string `yaml:"color,omitempty"`

	Extensions ExtensionConfig `yaml:"extensions,omitempty"`
}

// ExtensionConfig holds the host-extension (internal/hostext/*) settings:
// whether the store and identity extensions are wired, and resource
// locations. The gRPC and bitview builtins are installed regardless.
type ExtensionConfig struct {
	// Store, if set, opens a sqlite-backed KVStore at this path and binds
	// it as the `store` global.
	Store string `yaml:"store,omitempty"`

	// ProtoImportDirs are the -I search paths passed to the gRPC
	// extension's proto parser.
	ProtoImportDirs []string `yaml:"proto_import_dirs,omitempty"`

	// Identity enables the uuid-backed `id()` builtin. Defaults to on.
	Identity *bool `yaml:"identity,omitempty"`
}

// LoadConfig reads and parses path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("runtimecfg: reading %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses YAML content from bytes. path is used only in error
// messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("runtimecfg: parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) validate(path string) error {
	if c.Color != "" && c.Color != "auto" && c.Color != "always" && c.Color != "never" {
		return fmt.Errorf("%s: color: must be one of auto, always, never", path)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Color == "" {
		c.Color = "auto"
	}
	if c.Extensions.Identity == nil {
		on := true
		c.Extensions.Identity = &on
	}
}

// IdentityEnabled reports whether the uuid extension should be wired.
func (c *Config) IdentityEnabled() bool {
	return c.Extensions.Identity == nil || *c.Extensions.Identity
}
