package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCounts(t *testing.T) {
	rec := NewRecorder()

	processedBefore := testutil.ToFloat64(channelsProcessed)
	skippedBefore := testutil.ToFloat64(skipped)
	premiumBefore := testutil.ToFloat64(matches.WithLabelValues("premium"))

	rec.RecordChannel("premium", true)
	rec.RecordChannel("broadcast", true)
	rec.RecordChannel("none", false)

	if got := testutil.ToFloat64(channelsProcessed) - processedBefore; got != 3 {
		t.Errorf("processed delta = %v, want 3", got)
	}
	if got := testutil.ToFloat64(skipped) - skippedBefore; got != 1 {
		t.Errorf("skipped delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(matches.WithLabelValues("premium")) - premiumBefore; got != 1 {
		t.Errorf("premium matches delta = %v, want 1", got)
	}
}

func TestRecorderRunDuration(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRunDuration(0.25)

	if got := testutil.CollectAndCount(runDuration); got != 1 {
		t.Errorf("histogram series = %d, want 1", got)
	}
}
