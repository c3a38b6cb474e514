// Package http implements the HTTP handlers of the Cash Flow Story API.
// Handlers stay thin: they decode and validate the request, call a service
// through an interface and render the result. Failures are handed to the
// shared error handler, which answers with RFC 7807 problem documents.
//
// # Routes
//
//	GET  /                              API information
//	GET  /health                        basic health document
//	GET  /api/health[/ready|/live]      health, readiness and liveness
//	GET  /api/version                   build and version information
//	POST /api/calculate                 metrics for one period
//	POST /api/calculate/batch           metrics for a series of periods
//	POST /api/calculate/batch/export    series download (?format=csv|xlsx)
//	GET  /api/demo/rebeccas             Rebeccas Coffee sample series
//	GET  /api/demo/rebeccas/summary     analyst commentary for the sample
//	GET  /api/demo/rebeccas/export      sample series download
//	GET  /api/metrics                   metric definitions
//	GET  /api/metrics/{name}            explanation of one metric
//
// # Error Mapping
//
//	- malformed JSON                    400
//	- field or domain validation        422
//	- unknown metric                    404
//	- unsupported export format         400
//	- oversized body                    413
//	- cancelled or timed out request    504
//	- anything else                     500 "Calculation error: ..."
package http
