// Package rgw resolves run-time connection parameters for an RGW object
// storage gateway and exposes a typed client over its admin HTTP API.
//
// # Overview
//
// Building a client is a pure composition over externally supplied
// collaborators:
//
//	daemon pool → select one daemon → parse its frontend config →
//	resolve credentials → signed HTTP transport + S3 API client
//
// The settings store, the orchestration layer listing daemons, and the
// network transport are injected (config.Settings, DaemonPool, the HTTP
// client inside the transport); nothing in this package holds global
// state, and a Client is safe for concurrent use once constructed.
//
// # Error Handling
//
// Failure states are sentinel errors in internal/common that callers match
// with errors.Is: ErrNoDaemons, ErrDaemonNotFound, ErrNoCredentials,
// ErrFrontendParse, ErrValidation. Wrapped messages quote the offending
// input (config string, host/port, bucket) verbatim. No operation retries
// internally.
package rgw
