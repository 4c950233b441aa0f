package api

import (
	"encoding/json"
	"net/http"
)

// HealthCheck reports process liveness
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// ReadinessCheck reports whether the server is accepting traffic.
// Readiness is flipped off at the start of a graceful shutdown so load
// balancers stop routing to this instance before it goes away.
func (s *Server) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !s.ready.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}

// SetReady flips the state reported by ReadinessCheck
func (s *Server) SetReady(ready bool) {
	s.ready.Store(ready)
}
