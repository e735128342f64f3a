package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRegisterIsIdempotent(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg)
	Register(reg)

	PaymentsRejectedTotal.WithLabelValues("already_paid").Inc()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	found := false
	for _, family := range families {
		if family.GetName() == "parcelhub_payments_rejected_total" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected rejected-payments counter in registry")
	}
}
