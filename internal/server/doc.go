// Package server runs the HTTP server of the file keeper.
//
// It owns startup, signal handling and graceful shutdown of the listener.
package server
