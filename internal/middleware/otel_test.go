package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"cashflowstory/internal/infrastructure"
)

func TestOTelMiddleware_Handler(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})

	providers := &infrastructure.OTelProviders{
		Tracer: tp.Tracer("test"),
		Meter:  mp.Meter("test"),
	}
	metrics, err := infrastructure.CreateAnalyticsMetrics(providers.Meter)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(NewOTelMiddleware(providers, metrics, testLogger(nil)).Handler)
	router.Get("/api/metrics/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/metrics/bogus", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/metrics/{name}", spans[0].Name())

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http_requests_total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			require.Len(t, sum.DataPoints, 1)
			dp := sum.DataPoints[0]
			assert.Equal(t, int64(1), dp.Value)
			route, _ := dp.Attributes.Value(attribute.Key("route"))
			assert.Equal(t, "/api/metrics/{name}", route.AsString())
			status, _ := dp.Attributes.Value(attribute.Key("status_code"))
			assert.Equal(t, int64(http.StatusNotFound), status.AsInt64())
			found = true
		}
	}
	assert.True(t, found, "http_requests_total recorded")
}

func TestOTelMiddleware_NilMetrics(t *testing.T) {
	providers := &infrastructure.OTelProviders{
		Tracer: sdktrace.NewTracerProvider().Tracer("test"),
	}
	handler := NewOTelMiddleware(providers, nil, nil).Handler(okHandler)

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	_, _ = rw.Write([]byte("hello"))
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.Equal(t, int64(5), rw.bytesWritten)
}
