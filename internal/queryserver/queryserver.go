// Copyright (c) 2026 Neomantra Corp
//
// queryserver is a minimal read-only HTTP surface over an elucidator.Store,
// generalizing the teacher's cobra+structured-logging CLI scaffolding into a
// long-running handler rather than a one-shot command. It never takes the
// store's write lock: GetBlobsInBB/GetInBB/Designation already serialize
// themselves under elucidator.Store's own sync.RWMutex, so the handler adds no
// locking of its own.

package queryserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/neomantra/elucidator-go"
)

// Server wraps a *elucidator.Store behind GET /query and GET /designations.
type Server struct {
	store  *elucidator.Store
	logger *slog.Logger
}

// New returns a Server backed by store. A nil logger falls back to
// slog.Default().
func New(store *elucidator.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{store: store, logger: logger}
}

// Handler returns the http.Handler to mount, routed via net/http's
// ServeMux — no router dependency is justified for two routes this shaped.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /query", s.handleQuery)
	mux.HandleFunc("GET /designations", s.handleDesignations)
	return mux
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	designation := q.Get("designation")
	if designation == "" {
		http.Error(w, "missing designation query parameter", http.StatusBadRequest)
		return
	}
	bb, err := parseBox(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	epsilon, err := parseFloatParam(q, "epsilon", 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := s.store.GetInBB(bb, designation, epsilon)
	if err != nil {
		s.logger.Error("query failed", "designation", designation, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.logger.Info("query served", "designation", designation, "matches", len(records))
	writeJSON(w, records)
}

func (s *Server) handleDesignations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.DesignationNames())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func parseBox(q map[string][]string) (elucidator.Box, error) {
	get := func(key string) (float64, error) {
		vals, ok := q[key]
		if !ok || len(vals) == 0 {
			return 0, missingParam(key)
		}
		return strconv.ParseFloat(vals[0], 64)
	}
	var bb elucidator.Box
	var err error
	fields := []struct {
		key string
		dst *float64
	}{
		{"xmin", &bb.XMin}, {"xmax", &bb.XMax},
		{"ymin", &bb.YMin}, {"ymax", &bb.YMax},
		{"zmin", &bb.ZMin}, {"zmax", &bb.ZMax},
		{"tmin", &bb.TMin}, {"tmax", &bb.TMax},
	}
	for _, f := range fields {
		*f.dst, err = get(f.key)
		if err != nil {
			return elucidator.Box{}, err
		}
	}
	return bb, nil
}

func parseFloatParam(q map[string][]string, key string, fallback float64) (float64, error) {
	vals, ok := q[key]
	if !ok || len(vals) == 0 || vals[0] == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(vals[0], 64)
}

type missingParamError string

func (e missingParamError) Error() string { return "missing query parameter: " + string(e) }

func missingParam(key string) error { return missingParamError(key) }
