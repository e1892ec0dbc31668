package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewIntakeMetrics_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewIntakeMetrics(reg)

	m.ObserveSubmission(OutcomeAccepted)
	m.ObserveSubmission(OutcomeDuplicate)
	m.ObserveFieldError("email")
	m.ObservePersistLatency(0.01)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) != 3 {
		t.Fatalf("expected 3 metric families, got %d", len(families))
	}
}

func TestIntakeMetrics_NilSafe(t *testing.T) {
	var m *IntakeMetrics
	m.ObserveSubmission(OutcomeError)
	m.ObserveFieldError("phone")
	m.ObservePersistLatency(1)
}
