// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable server timeouts, a JSON health-check
// handler, and structured logging via slog.
//
// The core type is Server. Run blocks until the context is cancelled or an
// interrupt/TERM signal is received, then shuts the server down using
// http.Server.Shutdown with a configurable deadline. Construction is done
// through New or NewFromConfig together with Option helpers such as WithAddr
// and WithShutdownTimeout. WithStartHook and WithStopHook let callers execute
// side-effects around the server life-cycle (for example disconnecting the
// database client after shutdown).
//
// Run wraps all listen errors with ErrStart, while Shutdown wraps underlying
// shutdown errors with ErrShutdown. Use errors.Is to distinguish them.
package httpserver
