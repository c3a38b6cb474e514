// Package shared holds helpers used across packages that belong to no single
// layer. Its testutil subpackage provides log capture and input fixtures for
// tests:
//
//	logger, logs := testutil.NewTestLogger(t)
//	svc := services.NewHealthService(logger)
//	...
//	testutil.AssertLogContains(t, logs, slog.LevelWarn, "readiness check failed")
//
// Nothing here may import a transport or application package.
package shared
