package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordWrite(t *testing.T) {
	before := testutil.ToFloat64(writesTotal.WithLabelValues("payment", "ok"))
	RecordWrite("payment", "ok")
	assert.Equal(t, before+1, testutil.ToFloat64(writesTotal.WithLabelValues("payment", "ok")))
}

func TestObserveReportKeepsRowsOnSuccessOnly(t *testing.T) {
	ObserveReport("churn", "ok", time.Now(), 4)
	assert.Equal(t, 4.0, testutil.ToFloat64(reportRows.WithLabelValues("churn")))

	ObserveReport("churn", "connection_error", time.Now(), 0)
	assert.Equal(t, 4.0, testutil.ToFloat64(reportRows.WithLabelValues("churn")))
}

func TestRecordPublishFailure(t *testing.T) {
	before := testutil.ToFloat64(eventsPublishFailures)
	RecordPublishFailure()
	assert.Equal(t, before+1, testutil.ToFloat64(eventsPublishFailures))
}
