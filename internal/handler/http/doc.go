// Package http implements the hub's HTTP transport layer.
//
// It exposes route wiring, request handlers, and middleware used by the sync
// API. Cross-cutting concerns such as device authentication, request tracing,
// access logging, and response compression are handled in this package before
// requests are delegated to the service layer.
package http
