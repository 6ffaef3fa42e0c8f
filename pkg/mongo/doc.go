// Package mongo provides MongoDB connection management for the user API.
//
// Configuration is entirely environment-driven to simplify deployment across
// development, staging, and production environments. Connection failures are
// retried with a configurable interval to ride out transient outages of
// managed MongoDB deployments.
//
// Beyond connection management the package exposes the two primitives the
// service relies on:
//
//   - WithTransaction wraps a callback in a server-side multi-document
//     transaction (session + commit/abort), the only coordination mechanism
//     the service uses across documents.
//   - Healthcheck returns a ping-based probe for HTTP health endpoints.
//
// Connection failures are wrapped in package sentinel errors; use errors.Is
// to check for specific failure scenarios.
package mongo
