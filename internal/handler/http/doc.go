// Package http implements the HTTP transport layer of the storefront.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as session authentication, request
// tracing, access logging, CORS, rate limiting, request-body sanitization,
// and CSRF protection are handled in this package before requests are
// delegated to the service layer.
package http
