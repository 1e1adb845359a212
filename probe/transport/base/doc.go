// Package base implements the transport-agnostic core of the probe
// transports. Concrete transports (unix, tcp) inject connector
// implementations; the base package owns the single-shot control flow:
// listen, accept one connection, one bounded read on the server side, and
// connect once, one full write on the client side, with optional deadlines
// on every blocking call.
//
// Key Components:
//
//   - IServerConnector / IClientConnector: The injection points for
//     transport-specific listen, connect, cleanup and socket-option logic.
//
//   - serverTransport / clientTransport: The shared sequential logic.
//     There are no goroutines, no accept loop and no retries here.
package base
