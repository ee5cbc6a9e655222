// Package server wires and runs the CMS HTTP server together with the
// background workers.
//
// It owns the process lifecycle: startup, signal handling and a graceful
// shutdown that lets in-flight requests finish within the request timeout.
package server
