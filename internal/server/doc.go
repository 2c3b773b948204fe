// Package server runs the HTTP transport: startup, OS signal handling, and
// graceful shutdown of in-flight connections.
package server
