// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: startup, stop-signal handling, and graceful
// shutdown.
package server
