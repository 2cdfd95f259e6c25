// Package config loads the uix.toml project file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/wadvanced/aurora-uix/internal/layout"
)

// Config is the project configuration. Paths are resolved relative to the
// directory containing the file they were loaded from.
type Config struct {
	// ResourcesDir holds the CUE resource definitions.
	ResourcesDir string `toml:"resources_dir"`
	// LayoutsDir holds the .hcl layout declarations.
	LayoutsDir string `toml:"layouts_dir"`
	// OutDir receives the generated JSON files.
	OutDir string `toml:"out_dir"`
	// DefaultFieldsLayout arranges synthesized form/show fields: "stacked"
	// or "inline".
	DefaultFieldsLayout string `toml:"default_fields_layout"`
	// Fill lists kind-to-kind borrow rules applied before synthesis.
	Fill []FillRule `toml:"fill"`

	Server Server `toml:"server"`
}

// FillRule borrows a missing layout kind from another declared kind.
type FillRule struct {
	Missing string `toml:"missing"`
	From    string `toml:"from"`
}

// Server configures the preview server.
type Server struct {
	Addr string `toml:"addr"`
	// PollInterval is how often sources are re-checked, in milliseconds.
	PollInterval int `toml:"poll_interval_ms"`
}

// Default returns the configuration used when no uix.toml exists.
func Default() Config {
	return Config{
		ResourcesDir:        "resources",
		LayoutsDir:          "layouts",
		OutDir:              "gen",
		DefaultFieldsLayout: "stacked",
		Server: Server{
			Addr:         ":8089",
			PollInterval: 500,
		},
	}
}

// Load reads path and overlays it on the defaults. A missing file is not an
// error: the defaults apply as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	base := filepath.Dir(path)
	cfg.ResourcesDir = resolve(base, cfg.ResourcesDir)
	cfg.LayoutsDir = resolve(base, cfg.LayoutsDir)
	cfg.OutDir = resolve(base, cfg.OutDir)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func (c Config) validate() error {
	switch c.DefaultFieldsLayout {
	case "stacked", "inline":
	default:
		return fmt.Errorf("default_fields_layout must be stacked or inline, got %q", c.DefaultFieldsLayout)
	}
	for _, r := range c.Fill {
		if _, err := layout.ParseTag(r.Missing); err != nil {
			return fmt.Errorf("fill rule: %w", err)
		}
		if _, err := layout.ParseTag(r.From); err != nil {
			return fmt.Errorf("fill rule: %w", err)
		}
	}
	return nil
}

// Settings converts the configuration into engine settings.
func (c Config) Settings() layout.Settings {
	set := layout.DefaultSettings()
	set.DefaultFieldsLayout = c.DefaultFieldsLayout
	if len(c.Fill) > 0 {
		set.FillRules = set.FillRules[:0]
		for _, r := range c.Fill {
			target, _ := layout.ParseTag(r.Missing)
			source, _ := layout.ParseTag(r.From)
			set.FillRules = append(set.FillRules, layout.FillRule{Source: source, Target: target})
		}
	}
	return set
}
