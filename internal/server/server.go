// Package server serves the generated layout trees over HTTP for live
// previewing. It holds the latest pipeline result in memory, re-runs the
// pipeline when source files change, and notifies WebSocket subscribers so
// preview clients can reload.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/wadvanced/aurora-uix/internal/config"
	"github.com/wadvanced/aurora-uix/internal/gen"
	"github.com/wadvanced/aurora-uix/internal/layout"
)

// Server exposes the current pipeline result.
type Server struct {
	cfg    config.Config
	logger *log.Logger
	hub    *hub

	mu     sync.RWMutex
	result *gen.Result
}

// New builds a server around an initial pipeline result.
func New(cfg config.Config, logger *log.Logger, result *gen.Result) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
		hub:    newHub(logger),
		result: result,
	}
}

// Run serves until ctx is cancelled, watching source dirs in the background.
func (s *Server) Run(ctx context.Context) error {
	go s.watch(ctx)

	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.Routes(),
	}
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	s.logger.Info("serving layout previews", "addr", s.cfg.Server.Addr)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Routes builds the HTTP router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/layouts", s.listLayouts)
		r.Get("/layouts/{resource}/{kind}", s.getLayout)
		r.Get("/preloads/{resource}", s.getPreloads)
		r.Get("/resources", s.listResources)
	})

	r.Get("/live", s.hub.ServeHTTP)
	return r
}

func (s *Server) snapshot() *gen.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

func (s *Server) swap(result *gen.Result) {
	s.mu.Lock()
	s.result = result
	s.mu.Unlock()
	s.hub.broadcast("reload")
}

// layoutRef is one entry of the layout index.
type layoutRef struct {
	Resource string `json:"resource"`
	Kind     string `json:"kind"`
	Path     string `json:"path"`
}

func (s *Server) listLayouts(w http.ResponseWriter, _ *http.Request) {
	res := s.snapshot()

	var refs []layoutRef
	for name, trees := range res.Trees {
		for kind := range trees {
			refs = append(refs, layoutRef{
				Resource: name,
				Kind:     kind.String(),
				Path:     "/v1/layouts/" + name + "/" + kind.String(),
			})
		}
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Resource != refs[j].Resource {
			return refs[i].Resource < refs[j].Resource
		}
		return refs[i].Kind < refs[j].Kind
	})
	writeJSON(w, http.StatusOK, refs)
}

func (s *Server) getLayout(w http.ResponseWriter, r *http.Request) {
	res := s.snapshot()

	name := chi.URLParam(r, "resource")
	trees, ok := res.Trees[name]
	if !ok {
		writeError(w, http.StatusNotFound, "UNKNOWN_RESOURCE", "no such resource: "+name)
		return
	}
	kind, err := layout.ParseTag(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "UNKNOWN_KIND", err.Error())
		return
	}
	tree, ok := trees[kind]
	if !ok {
		writeError(w, http.StatusNotFound, "UNKNOWN_KIND", "no "+kind.String()+" layout for "+name)
		return
	}
	writeJSON(w, http.StatusOK, tree)
}

func (s *Server) getPreloads(w http.ResponseWriter, r *http.Request) {
	res := s.snapshot()

	name := chi.URLParam(r, "resource")
	if _, ok := res.Resources[name]; !ok {
		writeError(w, http.StatusNotFound, "UNKNOWN_RESOURCE", "no such resource: "+name)
		return
	}
	pre := res.Preloads[name]
	if pre == nil {
		pre = []layout.Preload{}
	}
	writeJSON(w, http.StatusOK, pre)
}

func (s *Server) listResources(w http.ResponseWriter, _ *http.Request) {
	res := s.snapshot()

	names := make([]string, 0, len(res.Resources))
	for name := range res.Resources {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]map[string]any, 0, len(names))
	for _, name := range names {
		out = append(out, map[string]any{
			"name":   name,
			"fields": res.Resources[name].Fields,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
		"code":  code,
	})
}
