package main

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"xptracker-backend/lib/timezone"

	"github.com/stretchr/testify/require"
)

func TestRunStateHealthEndpoint(t *testing.T) {
	state := &runState{}

	at := time.Date(2024, time.March, 10, 10, 45, 0, 0, timezone.Location)
	state.record(at, nil)

	rec := httptest.NewRecorder()
	state.serveHealth(rec, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var status runStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.True(t, status.LastRun.Equal(at))
	require.Empty(t, status.LastError)

	state.record(at.Add(24*time.Hour), fmt.Errorf("scrape exploded"))
	require.Equal(t, "scrape exploded", state.snapshot().LastError)
}

// the cron goroutine records while the health endpoint reads, the
// state must hold up under the race detector
func TestRunStateConcurrentAccess(t *testing.T) {
	state := &runState{}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				state.record(timezone.Now(), fmt.Errorf("failure %d-%d", n, j))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rec := httptest.NewRecorder()
				state.serveHealth(rec, httptest.NewRequest("GET", "/health", nil))
			}
		}()
	}
	wg.Wait()

	require.NotEmpty(t, state.snapshot().LastError)
}
