package main

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

type runStatus struct {
	LastRun   time.Time `json:"last_run"`
	LastError string    `json:"last_error"`
}

// runState is written by the cron goroutine and read by the health
// endpoint, so every access goes through the mutex.
type runState struct {
	mu     sync.Mutex
	status runStatus
}

func (s *runState) record(at time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.LastRun = at
	s.status.LastError = ""
	if err != nil {
		s.status.LastError = err.Error()
	}
}

func (s *runState) snapshot() runStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *runState) serveHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.snapshot())
}
