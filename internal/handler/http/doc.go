// Package http implements the JSON API of the insight server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as session cookies, request tracing,
// access logging, response compression and login throttling are handled in
// this package before requests are delegated to the service layer.
package http
