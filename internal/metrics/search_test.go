package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterDomainMetrics_Idempotent(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("second registration panicked: %v", r)
		}
	}()
	RegisterDomainMetrics()
	RegisterDomainMetrics()
}

func TestSearchRequestsTotal_Labels(t *testing.T) {
	before := testutil.ToFloat64(SearchRequestsTotal.WithLabelValues("te", "no_match"))
	SearchRequestsTotal.WithLabelValues("te", "no_match").Inc()
	after := testutil.ToFloat64(SearchRequestsTotal.WithLabelValues("te", "no_match"))
	if after-before != 1 {
		t.Errorf("expected increment of 1, got %f", after-before)
	}
}
