package server

// Server defines the lifecycle contract of the CMS process.
//
// [RunServer] blocks until shutdown is requested by a signal or until a
// component fails. [Shutdown] stops everything that is still running.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
