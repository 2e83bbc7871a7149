// Package http implements the HTTP transport layer of the file keeper.
//
// It wires the /api/files routes, the version and metrics endpoints, and the
// middleware that attaches a trace id, writes access logs and records request
// metrics before requests are delegated to the service layer.
package http
