// Package app provides application initialization and lifecycle management
// for the Cash Flow Story API. It wires configuration, logging, telemetry,
// the analytics services and the HTTP router together.
//
// # Initialization Flow
//
//  1. Load configuration from defaults, an optional YAML file, .env and the environment
//  2. Initialize the structured logger and OpenTelemetry providers
//  3. Create the analytics evaluator, services and metric instruments
//  4. Build the chi router with its middleware chain
//  5. Configure the HTTP server
//
// # Usage
//
//	application, err := app.NewApplication()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := application.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Graceful Shutdown
//
// Run blocks until SIGINT or SIGTERM, or until the server stops on its own,
// then drains in-flight requests within the configured shutdown timeout and
// flushes telemetry.
//
// # Error Handling
//
// All initialization errors are returned to the caller. The package never
// calls os.Exit, leaving the exit code to main.
package app
