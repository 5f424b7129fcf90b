package server

// Server is the lifecycle contract for the transport servers the sync
// application runs (currently only HTTP).
//
// RunServer blocks until the server stops; Shutdown releases resources.
type Server interface {
	// RunServer starts serving sync requests and blocks until the server
	// stops.
	RunServer()

	// Shutdown gracefully stops the server, letting in-flight pushes and
	// fetches finish.
	Shutdown()
}
