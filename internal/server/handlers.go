package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/s4lift/s4lift/pkg/remediate"
)

// handleRemediate processes a batch of code units. Units are independent,
// so they are fanned out across workers; each unit's own scan stays strictly
// left-to-right inside the engine.
func (s *Server) handleRemediate(w http.ResponseWriter, r *http.Request) {
	var units []remediate.Unit
	if err := json.NewDecoder(r.Body).Decode(&units); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	// The issue list is computed for every unit but only attached when the
	// caller asks for it.
	includeIssues := r.URL.Query().Get("include_issues") == "1"
	runID := uuid.NewString()
	start := time.Now()

	results := make([]remediate.Result, len(units))
	eg, _ := errgroup.WithContext(r.Context())
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, u := range units {
		i, u := i, u
		eg.Go(func() error {
			res := s.engine.RemediateUnit(u)
			if !includeIssues {
				res.Issues = nil
			}
			results[i] = res
			return nil
		})
	}
	// Workers never fail: the engine has no error path.
	_ = eg.Wait()

	s.logger.Info("remediated batch",
		"run", runID, "units", len(units), "elapsed", time.Since(start).Round(time.Millisecond))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-S4lift-Run", runID)
	if err := json.NewEncoder(w).Encode(results); err != nil {
		s.logger.Error("encoding response", "run", runID, "error", err)
	}
}

// handleTables returns the reference vocabulary.
func (s *Server) handleTables(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.catalog.All()); err != nil {
		s.logger.Error("encoding tables", "error", err)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
