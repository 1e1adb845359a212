// Package common provides the core data structures and utilities shared by
// both probe roles: configuration structs, the fixed probe message with its
// wire encoding and verification rules, leveled logging, and run counters.
//
// Key Components:
//
//   - ServerConfig / ClientConfig: All tunables for the receiving and
//     probing roles, each with a formatted String() representation that is
//     logged at startup.
//
//   - Message: The fixed payload. On the wire it is the message text plus a
//     single NUL terminator; verification is a length-bounded comparison of
//     the leading text bytes, so trailing buffer content never matters.
//
//   - Logging: A custom logger.ILogger factory with uniform formatting,
//     installed globally by InitLoggers. Diagnostics are written to stderr.
//
//   - Metrics: Run counters (connections, bytes, verification outcomes)
//     writable as a Prometheus text summary at the end of a run.
package common
