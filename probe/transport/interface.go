package transport

import (
	"errors"

	"github.com/crossworlds/sockprobe/probe/common"
)

// ErrNoData indicates the peer closed the connection before sending any
// payload (a zero-byte read)
var ErrNoData = errors.New("connection closed without payload")

// --------------------------------------------------------------------------
// Server Transport
// --------------------------------------------------------------------------

// IProbeServerTransport is the interface for the receiving side of a probe.
// A transport handles exactly one connection per Receive call; there is no
// accept loop and no per-connection concurrency.
type IProbeServerTransport interface {
	// Receive binds the endpoint, accepts a single connection and performs
	// one bounded read of at most config.BufferSize bytes. It returns the
	// received bytes and closes both the connection and the listener
	// before returning.
	Receive(config common.ServerConfig) ([]byte, error)

	// Cleanup removes the endpoint from the system. For unix sockets this
	// unlinks the socket path; transports without a filesystem footprint
	// treat it as a no-op.
	Cleanup(config common.ServerConfig) error
}

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// IProbeClientTransport is the interface for the probing side.
type IProbeClientTransport interface {
	// Deliver connects to the endpoint with a single attempt and writes
	// the full payload in one call. The connection is closed before
	// returning.
	Deliver(config common.ClientConfig, payload []byte) error
}
