// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, signal handling, and graceful shutdown of all enabled transports.
// In-flight HTTP requests are given config.Server.ShutdownTimeout to finish.
package server
