// Package server runs the insight API transports: the chi HTTP server
// with the auth, conversation and analysis routes, and the optional gRPC
// health server. On a stop signal gRPC health flips to NOT_SERVING first,
// then both servers drain and shut down.
package server
