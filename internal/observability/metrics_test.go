package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordRequest(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordRequest("/gov/issues", "GET", 200, 5*time.Millisecond)
	metrics.RecordRequest("/gov/issues", "GET", 200, 7*time.Millisecond)
	metrics.RecordRequest("/signup", "POST", 400, time.Millisecond)

	assert.EqualValues(t, 2, metrics.RequestTotal("/gov/issues", "GET", 200))
	assert.EqualValues(t, 1, metrics.RequestTotal("/signup", "POST", 400))
	assert.EqualValues(t, 0, metrics.RequestTotal("/signup", "POST", 200))
}

func TestMetrics_NilSafe(t *testing.T) {
	var metrics *Metrics
	metrics.RecordRequest("/x", "GET", 200, 0)
	metrics.RecordError("/x", "GET", "STORE_ERROR")
	assert.EqualValues(t, 0, metrics.RequestTotal("/x", "GET", 200))
}
