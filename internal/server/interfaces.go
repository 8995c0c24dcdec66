package server

import "errors"

var errNoServersAreCreated = errors.New("no servers are created")

// Server runs the enabled transports until a stop signal arrives.
type Server interface {
	// RunServer blocks until shutdown completes.
	RunServer()

	Shutdown()
}
