package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordClassification(t *testing.T) {
	before := testutil.ToFloat64(ClassificationsTotal.WithLabelValues(OutcomeFallbackError))
	RecordClassification(OutcomeFallbackError)
	after := testutil.ToFloat64(ClassificationsTotal.WithLabelValues(OutcomeFallbackError))
	assert.Equal(t, before+1, after)
}

func TestRecordRanking(t *testing.T) {
	before := testutil.ToFloat64(RankingsTotal.WithLabelValues("test"))
	RecordRanking("test", 12)
	assert.Equal(t, before+1, testutil.ToFloat64(RankingsTotal.WithLabelValues("test")))
}

func TestObserveClassificationCall(t *testing.T) {
	assert.NotPanics(t, func() { ObserveClassificationCall(150 * time.Millisecond) })
}
