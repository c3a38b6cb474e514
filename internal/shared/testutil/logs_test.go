package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogCapture(t *testing.T) {
	logger, logs := NewTestLogger(t)

	logger.With(slog.String("component", "svc")).Info("started", slog.Int("workers", 4))
	logger.WithGroup("req").Warn("slow", slog.String("path", "/api"))

	records := logs.Records()
	assert.Len(t, records, 2)

	r := AssertLogContains(t, logs, slog.LevelInfo, "started")
	assert.Equal(t, "svc", r.Attrs["component"])
	assert.Equal(t, int64(4), r.Attrs["workers"])

	r = AssertLogContains(t, logs, slog.LevelWarn, "slow")
	assert.Equal(t, "/api", r.Attrs["req.path"])

	_, ok := logs.Find(slog.LevelError, "started")
	assert.False(t, ok)
	AssertNoErrors(t, logs)
}

func TestPeriod(t *testing.T) {
	p := Period("Acme", "2023", 1000)
	assert.Equal(t, 600.0, p.CostOfGoods)
	assert.Equal(t, "Acme", p.CompanyName)
}
