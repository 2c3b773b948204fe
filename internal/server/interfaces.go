package server

// Server is the lifecycle contract the composition root drives. RunServer
// blocks until shutdown has completed; Shutdown may be called from another
// goroutine to stop serving.
type Server interface {
	RunServer()
	Shutdown()
}
