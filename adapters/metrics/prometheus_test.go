package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveGeneration(t *testing.T) {
	m := New()

	m.ObserveGeneration("success", 2*time.Second, 3)
	m.ObserveGeneration("success", time.Second, 3)
	m.ObserveGeneration("malformed_generation_output", time.Second, 0)

	if got := testutil.ToFloat64(m.generations.WithLabelValues("success")); got != 2 {
		t.Errorf("success count = %v", got)
	}
	if got := testutil.ToFloat64(m.generations.WithLabelValues("malformed_generation_output")); got != 1 {
		t.Errorf("failure count = %v", got)
	}
	if got := testutil.ToFloat64(m.chapters); got != 6 {
		t.Errorf("chapters = %v", got)
	}
	if n := testutil.CollectAndCount(m.duration); n != 2 {
		t.Errorf("duration series = %d", n)
	}
}

func TestRegistry(t *testing.T) {
	m := New()
	m.ObserveGeneration("success", time.Millisecond, 1)

	families, err := m.registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"fanfic_generations_total",
		"fanfic_generation_duration_seconds",
		"fanfic_chapters_normalized_total",
		"go_goroutines",
	} {
		if !names[want] {
			t.Errorf("metric %s not registered", want)
		}
	}
}
