package server

import "context"

// Server runs the inbound transports until the process is asked to stop.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives and then
	// shuts down gracefully. A non-nil error means serving failed.
	RunServer() error

	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx is done.
	Shutdown(ctx context.Context) error
}
