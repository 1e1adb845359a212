// Package probe provides the building blocks of the sockprobe tool, a
// smoke test for stream-socket connectivity between two processes.
//
// The package is organized into several subpackages:
//
//   - common: Core data structures and utilities used across the tool,
//     including the probe message, configuration structures, logging and
//     run counters.
//
//   - transport: Socket communication abstractions with pluggable
//     implementations (Unix domain sockets, TCP) and single-shot
//     semantics: one connection, one read or write.
//
//   - server: The receiving role, which accepts exactly one connection and
//     verifies the delivered message.
//
//   - client: The probing role, which connects once and delivers the
//     message.
package probe
