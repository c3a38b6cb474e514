package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cashflowstory/internal/services"
	"cashflowstory/internal/shared/testutil"
	"cashflowstory/pkg/contracts"
)

// MockHealthService is a mock implementation of HealthServiceInterface
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) HealthCheck(ctx context.Context) services.HealthStatus {
	return m.Called().Get(0).(services.HealthStatus)
}

func (m *MockHealthService) ReadinessCheck(ctx context.Context) services.HealthStatus {
	return m.Called().Get(0).(services.HealthStatus)
}

func (m *MockHealthService) LivenessCheck(ctx context.Context) services.HealthStatus {
	return m.Called().Get(0).(services.HealthStatus)
}

func (m *MockHealthService) Version() services.VersionStatus {
	return m.Called().Get(0).(services.VersionStatus)
}

func newHealthRouter(svc HealthServiceInterface) http.Handler {
	return newHealthRouterWithLogger(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newHealthRouterWithLogger(svc HealthServiceInterface, logger *slog.Logger) http.Handler {
	handler := NewHealthHandler(svc, logger)

	r := chi.NewRouter()
	r.Get("/", handler.Root)
	r.Get("/health", handler.Health)
	r.Get("/api/health", handler.HealthCheck)
	r.Get("/api/health/ready", handler.ReadinessCheck)
	r.Get("/api/health/live", handler.LivenessCheck)
	r.Get("/api/version", handler.Version)
	return r
}

func TestHealthHandler_Root(t *testing.T) {
	router := newHealthRouter(new(MockHealthService))

	w := doJSON(t, router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Cash Flow Story API", body["message"])
	assert.Equal(t, contracts.Version, body["version"])
	assert.Equal(t, "/docs", body["docs"])
	assert.Equal(t, "/health", body["health"])
}

func TestHealthHandler_Health(t *testing.T) {
	svc := new(MockHealthService)
	svc.On("HealthCheck").Return(services.HealthStatus{
		Status:    "ok",
		Service:   contracts.ServiceName,
		Timestamp: time.Now(),
		Version:   contracts.Version,
	})
	router := newHealthRouter(svc)

	w := doJSON(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Len(t, body, 2)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, contracts.ServiceName, body["service"])

	w = doJSON(t, router, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contracts.Version, decodeBody(t, w)["version"])

	svc.AssertExpectations(t)
}

func TestHealthHandler_ReadinessCheck(t *testing.T) {
	tests := []struct {
		name           string
		status         services.HealthStatus
		expectedStatus int
	}{
		{
			name: "ready",
			status: services.HealthStatus{
				Status:   "ready",
				Services: map[string]services.ServiceHealth{"analytics": {Status: "ready"}},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not ready",
			status: services.HealthStatus{
				Status: "not_ready",
				Services: map[string]services.ServiceHealth{
					"analytics": {Status: "not_ready", Message: "self check failed"},
				},
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockHealthService)
			svc.On("ReadinessCheck").Return(tt.status)
			logger, logs := testutil.NewTestLogger(t)

			w := doJSON(t, newHealthRouterWithLogger(svc, logger), http.MethodGet, "/api/health/ready", "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.status.Status, decodeBody(t, w)["status"])
			_, warned := logs.Find(slog.LevelWarn, "service not ready")
			assert.Equal(t, tt.expectedStatus != http.StatusOK, warned)
			svc.AssertExpectations(t)
		})
	}
}

func TestHealthHandler_LivenessAndVersion(t *testing.T) {
	svc := new(MockHealthService)
	svc.On("LivenessCheck").Return(services.HealthStatus{
		Status:  "alive",
		Runtime: map[string]interface{}{"goroutines": 4},
	})
	svc.On("Version").Return(services.VersionStatus{
		VersionInfo:   contracts.GetVersionInfo(),
		Service:       contracts.ServiceName,
		UptimeSeconds: 12,
	})
	router := newHealthRouter(svc)

	w := doJSON(t, router, http.MethodGet, "/api/health/live", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "alive", body["status"])
	assert.NotNil(t, body["runtime"])

	w = doJSON(t, router, http.MethodGet, "/api/version", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, contracts.ServiceName, body["service"])
	assert.Equal(t, float64(12), body["uptime_seconds"])

	svc.AssertExpectations(t)
}
