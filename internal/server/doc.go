// Package server runs the braintacle HTTP server.
//
// It covers the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
