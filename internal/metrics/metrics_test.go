package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordImportFinished(t *testing.T) {
	before := testutil.ToFloat64(importsFinishedTotal.WithLabelValues("timeout"))
	RecordImportFinished("timeout")
	assert.Equal(t, before+1, testutil.ToFloat64(importsFinishedTotal.WithLabelValues("timeout")))
}

func TestRecordPinningCall(t *testing.T) {
	before := testutil.ToFloat64(pinningCallsTotal.WithLabelValues("pin_by_hash", "error"))
	RecordPinningCall("pin_by_hash", 10*time.Millisecond, false)
	assert.Equal(t, before+1, testutil.ToFloat64(pinningCallsTotal.WithLabelValues("pin_by_hash", "error")))
}

func TestSetImportsTracked(t *testing.T) {
	SetImportsTracked(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(importsTracked))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	RecordRateLimiterRejection("pinning")
	RecordBundleOperation("bundle", true)
	RecordPinCacheLookup("miss")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "filekeeper_rate_limiter_rejections_total"))
	assert.True(t, strings.Contains(body, "filekeeper_bundle_operations_total"))
	assert.True(t, strings.Contains(body, "filekeeper_pin_cache_lookups_total"))
}
