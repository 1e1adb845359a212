// Package transport defines the interfaces and abstractions for probe
// communication. It provides a common contract that all transport
// implementations must fulfill, enabling protocol-agnostic probing.
//
// The package focuses on:
//   - Defining clear interfaces for the probing and receiving roles
//   - Single-shot semantics: one connection, one bounded read or write
//   - Enabling multiple transport implementations (Unix sockets, TCP)
//
// Key Components:
//
//   - IProbeServerTransport: Interface for the receiving side that binds an
//     endpoint, accepts exactly one connection and returns the bytes of a
//     single read.
//
//   - IProbeClientTransport: Interface for the probing side that connects
//     once and delivers the payload in a single write.
package transport
