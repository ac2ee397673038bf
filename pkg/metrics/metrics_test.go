package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestCollector_ObserveAnalysis(t *testing.T) {
	c := New()

	c.ObserveAnalysis("xlsx", 120, 250*time.Millisecond, nil)
	c.ObserveAnalysis("xlsx", 30, time.Second, nil)
	c.ObserveAnalysis("json", 0, time.Millisecond, errors.New("sem linhas"))

	body := scrape(t, c)

	assert.Contains(t, body, `movement_insights_analyses_total{outcome="ok",source="xlsx"} 2`)
	assert.Contains(t, body, `movement_insights_analyses_total{outcome="error",source="json"} 1`)
	assert.Contains(t, body, `movement_insights_rows_total{source="xlsx"} 150`)
	assert.Contains(t, body, `movement_insights_analysis_duration_seconds_count{source="xlsx"} 2`)
}

func TestCollector_IsolatedRegistry(t *testing.T) {
	first, second := New(), New()

	first.ObserveAnalysis("text", 5, time.Millisecond, nil)

	families, err := second.Registry().Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
	assert.Contains(t, scrape(t, first), `movement_insights_rows_total{source="text"} 5`)
}
