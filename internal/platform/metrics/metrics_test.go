package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveAdoption_IncrementsByOutcome(t *testing.T) {
	before := testutil.ToFloat64(adoptionOps.WithLabelValues("adopt", "ok"))

	ObserveAdoption("adopt", "ok")
	ObserveAdoption("adopt", "ok")
	ObserveAdoption("adopt", "conflict")

	if got := testutil.ToFloat64(adoptionOps.WithLabelValues("adopt", "ok")); got != before+2 {
		t.Fatalf("expected %v, got %v", before+2, got)
	}
}

func TestInit_Idempotent(t *testing.T) {
	Init()
	Init()
}

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/pets", "200"))
	ObserveRequest("GET", "/pets", "200", 0.01)
	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/pets", "200")); got != before+1 {
		t.Fatalf("expected counter to increase, got %v", got)
	}
}
