package server

import "context"

// Server defines the lifecycle contract of the reference sync server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer() error

	// Shutdown stops accepting requests and waits for in-flight ones until
	// ctx is done.
	Shutdown(ctx context.Context) error
}
