// Package gen drives the full generation pipeline: load resource definitions,
// parse layout declarations, merge and normalize, write JSON artifacts.
package gen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wadvanced/aurora-uix/internal/config"
	"github.com/wadvanced/aurora-uix/internal/declare"
	"github.com/wadvanced/aurora-uix/internal/layout"
	"github.com/wadvanced/aurora-uix/internal/resource"
)

// Result is one full pipeline run.
type Result struct {
	Resources resource.Map
	Trees     map[string]layout.Trees
	Preloads  map[string][]layout.Preload
}

// Run loads everything under cfg and produces normalized trees and preload
// plans for every resource.
func Run(cfg config.Config) (*Result, error) {
	resources, err := resource.LoadCUE(cfg.ResourcesDir)
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		return nil, fmt.Errorf("no resources defined in %s", cfg.ResourcesDir)
	}

	reg := layout.NewRegistry()
	if _, err := os.Stat(cfg.LayoutsDir); err == nil {
		frags, err := declare.ParseDir(cfg.LayoutsDir)
		if err != nil {
			return nil, err
		}
		for _, f := range frags {
			reg.Register(f)
		}
	}

	trees, err := layout.MergeAndNormalize(reg, resources, cfg.Settings())
	if err != nil {
		return nil, err
	}

	return &Result{
		Resources: resources,
		Trees:     trees,
		Preloads:  layout.Preloads(trees, resources),
	}, nil
}

// Write emits the run's artifacts under dir: one <resource>.<kind>.json per
// normalized tree plus a single preloads.json.
func (r *Result) Write(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	for name, trees := range r.Trees {
		for kind, tree := range trees {
			path := filepath.Join(dir, fmt.Sprintf("%s.%s.json", name, kind))
			if err := writeJSON(path, tree); err != nil {
				return err
			}
		}
	}
	return writeJSON(filepath.Join(dir, "preloads.json"), r.Preloads)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
