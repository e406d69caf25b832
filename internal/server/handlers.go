package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/recipsum/internal/dataset"
	"github.com/agbru/recipsum/internal/logging"
	"github.com/agbru/recipsum/internal/progress"
	"github.com/agbru/recipsum/internal/reduce"
)

// sumResponse is the JSON payload of the sum endpoint.
type sumResponse struct {
	Strategy   string  `json:"strategy"`
	Size       int     `json:"size"`
	Dist       string  `json:"dist"`
	Seed       int64   `json:"seed"`
	Sum        float64 `json:"sum"`
	Finite     bool    `json:"finite"`
	DurationMs float64 `json:"duration_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleMetrics serves the Prometheus exposition.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// handleSum generates a dataset from the query parameters, runs the
// requested strategy, and returns the reciprocal sum as JSON.
//
// Query parameters: size, dist, seed, algo, tasks, threshold.
func (s *Server) handleSum(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}

	size, err := queryInt(r, "size", 1_000_000)
	if err != nil {
		s.badRequest(w, err)
		return
	}
	if size < 1 || size > s.security.MaxSize {
		s.badRequest(w, fmt.Errorf("size must be between 1 and %d", s.security.MaxSize))
		return
	}
	seed, err := queryInt64(r, "seed", 1)
	if err != nil {
		s.badRequest(w, err)
		return
	}
	tasks, err := queryInt(r, "tasks", 0)
	if err != nil {
		s.badRequest(w, err)
		return
	}
	threshold, err := queryInt(r, "threshold", 0)
	if err != nil {
		s.badRequest(w, err)
		return
	}
	dist := queryString(r, "dist", dataset.DistUniform)
	algo := queryString(r, "algo", reduce.StrategyForkJoin)

	reducer, ok := s.factory.Get(algo)
	if !ok {
		s.badRequest(w, fmt.Errorf("unknown algo %q", algo))
		return
	}

	input, err := dataset.Generate(size, dist, seed)
	if err != nil {
		s.badRequest(w, err)
		return
	}

	opts := reduce.Options{LeafThreshold: threshold, NumTasks: tasks}
	start := time.Now()
	sum, err := reducer.Reduce(r.Context(), input, progress.Nop, opts)
	elapsed := time.Since(start)
	if err != nil {
		s.logger.Error("reduction failed", err, logging.String("algo", algo), logging.Int("size", size))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	s.metrics.ObserveReduction(algo, elapsed.Seconds())

	s.writeJSON(w, http.StatusOK, sumResponse{
		Strategy:   reducer.Name(),
		Size:       size,
		Dist:       dist,
		Seed:       seed,
		Sum:        sum,
		Finite:     !isNonFinite(sum),
		DurationMs: float64(elapsed.Microseconds()) / 1000,
	})
}

// handleFiles serves files below the configured root. Paths are cleaned and
// verified to stay inside the root before any filesystem access.
func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}

	rel := strings.TrimPrefix(r.URL.Path, "/files/")
	clean := path.Clean("/" + rel)
	full := filepath.Join(s.fileRoot, filepath.FromSlash(clean))

	root, err := filepath.Abs(s.fileRoot)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	abs, err := filepath.Abs(full)
	if err != nil || (abs != root && !strings.HasPrefix(abs, root+string(filepath.Separator))) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, abs)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("method not allowed",
		logging.String("method", r.Method), logging.String("path", r.URL.Path))
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

func (s *Server) badRequest(w http.ResponseWriter, err error) {
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encoding response", err)
	}
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}

func queryInt64(r *http.Request, key string, def int64) (int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}

func queryString(r *http.Request, key, def string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return def
}
