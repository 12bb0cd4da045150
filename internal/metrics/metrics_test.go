package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveOperation("create", "ok", time.Now())
	m.ObserveOperation("create", "ok", time.Now())
	m.ObserveOperation("create", "invalid", time.Now())
	m.SetRecordCount(7)
	m.IncrementEvents("created", nil)
	m.IncrementEvents("created", errors.New("redis down"))
	m.IncrementExports("xlsx", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("create", "invalid")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.records))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues("created", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exports.WithLabelValues("xlsx", "ok")))
}
