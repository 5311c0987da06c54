// Package http implements the REST transport of the braintacle server.
//
// It wires chi routes to the service layer and provides the middleware
// chain: request tracing, access logging, response compression and bearer
// token authentication.
package http
