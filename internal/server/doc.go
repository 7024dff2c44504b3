// Package server runs the product HTTP server: startup, signal handling and
// graceful shutdown.
package server
