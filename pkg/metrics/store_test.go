package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestStoreMetricsExportsCountersGaugeAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStoreMetrics(reg)
	m.IncCartMutation(CartOpAdd)
	m.IncCartMutation(CartOpAdd)
	m.IncCartMutation("")
	m.IncCheckout(OutcomeSuccess)
	m.ObserveOrderValue(25)
	m.IncNewsletter(OutcomeRejected)
	m.SetActiveSessions(3)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "cart_mutations_total", "op", CartOpAdd); err != nil {
		t.Fatalf("fetch cart add: %v", err)
	} else if got != 2 {
		t.Fatalf("expected add=2, got %f", got)
	}
	if got, err := fetchCounterValue(mfs, "cart_mutations_total", "op", "unknown"); err != nil {
		t.Fatalf("fetch unknown op: %v", err)
	} else if got != 1 {
		t.Fatalf("expected unknown=1, got %f", got)
	}
	if got, err := fetchCounterValue(mfs, "checkout_orders_total", "outcome", OutcomeSuccess); err != nil {
		t.Fatalf("fetch checkout: %v", err)
	} else if got != 1 {
		t.Fatalf("expected checkout success=1, got %f", got)
	}
	if got, err := fetchCounterValue(mfs, "newsletter_subscriptions_total", "outcome", OutcomeRejected); err != nil {
		t.Fatalf("fetch newsletter: %v", err)
	} else if got != 1 {
		t.Fatalf("expected newsletter rejected=1, got %f", got)
	}

	mf := findMetricFamily(mfs, "active_sessions")
	if mf == nil || mf.GetMetric()[0].GetGauge().GetValue() != 3 {
		t.Fatalf("expected active_sessions=3")
	}
	mf = findMetricFamily(mfs, "checkout_order_value")
	if mf == nil || mf.GetMetric()[0].GetHistogram().GetSampleSum() != 25 {
		t.Fatalf("expected order value sum 25")
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var m *StoreMetrics
	m.IncCartMutation(CartOpClear)
	m.IncCheckout(OutcomeError)
	m.SetActiveSessions(1)

	NewStoreMetrics(nil).IncNewsletter(OutcomeSuccess)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
