// Package server runs the reference sync server's HTTP transport.
//
// It owns startup, signal handling, and graceful shutdown.
package server
