package server

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/wadvanced/aurora-uix/internal/gen"
)

// watch polls the resource and layout dirs and re-runs the pipeline when
// anything changes. Polling keeps the behavior identical across platforms;
// the interval comes from the configuration.
func (s *Server) watch(ctx context.Context) {
	interval := time.Duration(s.cfg.Server.PollInterval) * time.Millisecond
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := s.fingerprint()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		cur := s.fingerprint()
		if cur == last {
			continue
		}
		last = cur

		result, err := gen.Run(s.cfg)
		if err != nil {
			s.logger.Error("regeneration failed", "err", err)
			continue
		}
		s.swap(result)
		s.logger.Info("layouts regenerated", "resources", len(result.Trees))
	}
}

// fingerprint folds the mod times and sizes of every source file into one
// comparable value. Collisions would only suppress a single reload cycle.
func (s *Server) fingerprint() uint64 {
	var h uint64 = 14695981039346656037
	mix := func(v uint64) {
		h ^= v
		h *= 1099511628211
	}

	for _, dir := range []string{s.cfg.ResourcesDir, s.cfg.LayoutsDir} {
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return nil
			}
			for _, b := range []byte(path) {
				mix(uint64(b))
			}
			mix(uint64(info.ModTime().UnixNano()))
			mix(uint64(info.Size()))
			return nil
		})
	}
	return h
}
