package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestIncrementWebhookUpdate(t *testing.T) {
	before := testutil.ToFloat64(WebhookUpdates.WithLabelValues("help", "replied"))
	IncrementWebhookUpdate("help", "replied")
	IncrementWebhookUpdate("help", "replied")
	after := testutil.ToFloat64(WebhookUpdates.WithLabelValues("help", "replied"))
	if after-before != 2 {
		t.Errorf("counter delta = %v, want 2", after-before)
	}
}

func TestIncrementAlertRun(t *testing.T) {
	before := testutil.ToFloat64(AlertRuns.WithLabelValues("spinny_price", "failed"))
	IncrementAlertRun("spinny_price", "failed")
	after := testutil.ToFloat64(AlertRuns.WithLabelValues("spinny_price", "failed"))
	if after-before != 1 {
		t.Errorf("counter delta = %v, want 1", after-before)
	}
}

func TestRecordOutboundCall(t *testing.T) {
	RecordOutboundCall("telegram", "200", 25*time.Millisecond)
	if n := testutil.CollectAndCount(OutboundCallLatency); n == 0 {
		t.Error("expected at least one outbound latency series")
	}
}
