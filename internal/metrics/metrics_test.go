package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freegoat/admin-dashboard/internal/metrics"
)

func TestMiddleware_RecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/notifications", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/notifications", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	count := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/notifications", "200"))
	assert.Equal(t, float64(3), count)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.RequestsInFlight))
}

func TestMiddleware_LabelsUnmatchedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	router := gin.New()
	router.Use(m.Middleware())

	req := httptest.NewRequest(http.MethodGet, "/nope", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	count := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404"))
	assert.Equal(t, float64(1), count)
}
