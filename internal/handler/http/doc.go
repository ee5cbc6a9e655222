// Package http implements the REST surface of the CMS server.
//
// It exposes route wiring, request handlers, and middleware used by the API
// under /api. Cross-cutting concerns such as authentication, request tracing,
// access logging, metrics, CORS, response compression and upload limits are
// handled in this package before requests are delegated to the service layer.
package http
