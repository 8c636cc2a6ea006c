package runner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/burl-go/burl/internal/specconfig"
)

func TestRunJoinsAllWorkers(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	spec := specconfig.FromURL(srv.URL)
	spec.Runs = 4
	spec.Concurrency = 3

	summary, err := Run(context.Background(), spec, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary == nil {
		t.Fatal("expected non-nil summary")
	}
	if len(summary.Collectors) != 3 {
		t.Fatalf("got %d collectors, want 3", len(summary.Collectors))
	}
	for _, c := range summary.Collectors {
		if len(c.Outcomes) != 4 {
			t.Errorf("worker %d: got %d outcomes, want 4", c.WorkerIndex, len(c.Outcomes))
		}
	}
	if got := atomic.LoadInt64(&hits); got != 12 {
		t.Errorf("server saw %d hits, want 12", got)
	}
	if !summary.EndTime.After(summary.StartTime) && !summary.EndTime.Equal(summary.StartTime) {
		t.Errorf("endTime should not precede startTime")
	}
}

func TestRunSequentialWhenConcurrencyIsZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	spec := specconfig.FromURL(srv.URL)
	spec.Runs = 2
	spec.Concurrency = 0

	summary, err := Run(context.Background(), spec, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(summary.Collectors) != 1 {
		t.Fatalf("got %d collectors, want 1", len(summary.Collectors))
	}
}

func TestRunAbortsOnWarmupFailure(t *testing.T) {
	spec := specconfig.FromURL("http://127.0.0.1:0")
	spec.WarmupRuns = 1
	spec.Runs = 5

	summary, err := Run(context.Background(), spec, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary != nil {
		t.Fatal("expected nil summary on warm-up failure")
	}
}
