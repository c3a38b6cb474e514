package services

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"cashflowstory/internal/analytics"
	"cashflowstory/internal/demo"
	"cashflowstory/pkg/contracts"
)

// HealthService provides health check functionality
type HealthService struct {
	mu        sync.RWMutex
	checks    map[string]CheckFunc
	startTime time.Time
	logger    *slog.Logger
}

// CheckFunc reports whether a dependency is ready
type CheckFunc func(ctx context.Context) error

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                   `json:"status"`
	Service   string                   `json:"service"`
	Timestamp time.Time                `json:"timestamp"`
	Version   string                   `json:"version"`
	Runtime   map[string]interface{}   `json:"runtime,omitempty"`
	Services  map[string]ServiceHealth `json:"services,omitempty"`
}

// ServiceHealth represents individual service health
type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// VersionStatus is the version document with uptime
type VersionStatus struct {
	contracts.VersionInfo
	Service       string  `json:"service"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	StartTime     string  `json:"start_time"`
}

// NewHealthService creates a new health service with the built-in engine check
func NewHealthService(logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}

	hs := &HealthService{
		checks:    make(map[string]CheckFunc),
		startTime: time.Now(),
		logger:    logger.With(slog.String("component", "health_service")),
	}
	hs.AddCheck("analytics", EngineSelfCheck)

	hs.logger.Info("HealthService initialized", slog.String("version", contracts.Version))
	return hs
}

// AddCheck registers a readiness check under name, replacing any previous one
func (hs *HealthService) AddCheck(name string, check CheckFunc) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.checks[name] = check
}

// HealthCheck returns overall health status
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	hs.logger.DebugContext(ctx, "HealthCheck: performing health check",
		slog.String("uptime", time.Since(hs.startTime).String()))

	return HealthStatus{
		Status:    "ok",
		Service:   contracts.ServiceName,
		Timestamp: time.Now().UTC(),
		Version:   contracts.Version,
	}
}

// ReadinessCheck runs every registered check
func (hs *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ready",
		Service:   contracts.ServiceName,
		Timestamp: time.Now().UTC(),
		Version:   contracts.Version,
		Services:  make(map[string]ServiceHealth),
	}

	hs.mu.RLock()
	names := make([]string, 0, len(hs.checks))
	for name := range hs.checks {
		names = append(names, name)
	}
	checks := make(map[string]CheckFunc, len(hs.checks))
	for name, check := range hs.checks {
		checks[name] = check
	}
	hs.mu.RUnlock()
	sort.Strings(names)

	for _, name := range names {
		if err := checks[name](ctx); err != nil {
			status.Status = "not_ready"
			status.Services[name] = ServiceHealth{Status: "not_ready", Message: err.Error()}
			hs.logger.WarnContext(ctx, "readiness check failed",
				slog.String("check", name),
				slog.String("error", err.Error()))
			continue
		}
		status.Services[name] = ServiceHealth{Status: "ready"}
	}

	return status
}

// LivenessCheck returns liveness status
func (hs *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "alive",
		Service:   contracts.ServiceName,
		Timestamp: time.Now().UTC(),
		Version:   contracts.Version,
		Runtime: map[string]interface{}{
			"uptime":     time.Since(hs.startTime).Seconds(),
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
		},
	}
}

// Version returns version information
func (hs *HealthService) Version() VersionStatus {
	return VersionStatus{
		VersionInfo:   contracts.GetVersionInfo(),
		Service:       contracts.ServiceName,
		UptimeSeconds: time.Since(hs.startTime).Seconds(),
		StartTime:     hs.startTime.UTC().Format(time.RFC3339),
	}
}

// EngineSelfCheck computes the first demo period and compares one metric
// against its known value
func EngineSelfCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	periods := demo.RebeccasCoffee()
	got := analytics.Compute(periods[0], nil).GrossMarginPercent
	const want = 29.41
	if got != want {
		return fmt.Errorf("engine self-check: gross_margin_percent = %v, want %v", got, want)
	}
	return nil
}
