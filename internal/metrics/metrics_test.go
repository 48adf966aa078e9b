package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCommand(t *testing.T) {
	before := testutil.ToFloat64(commandsReplayed.WithLabelValues("list"))
	RecordCommand("list")
	RecordCommand("list")
	assert.Equal(t, before+2, testutil.ToFloat64(commandsReplayed.WithLabelValues("list")))
}

func TestRecordNodes(t *testing.T) {
	dirs := testutil.ToFloat64(nodesCreated.WithLabelValues("dir"))
	files := testutil.ToFloat64(nodesCreated.WithLabelValues("file"))
	RecordNodes(3, 5)
	assert.Equal(t, dirs+3, testutil.ToFloat64(nodesCreated.WithLabelValues("dir")))
	assert.Equal(t, files+5, testutil.ToFloat64(nodesCreated.WithLabelValues("file")))
}

func TestMiddlewareCountsStatus(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	counter := httpRequestsTotal.WithLabelValues("GET", "/missing", "404")
	before := testutil.ToFloat64(counter)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordSizeComputations(1)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "dirsize_size_computations_total"))
}
