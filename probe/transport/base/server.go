package base

import (
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/crossworlds/sockprobe/probe/common"
	"github.com/crossworlds/sockprobe/probe/transport"
)

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IServerConnector defines the interface for transport-specific server operations
type IServerConnector interface {
	// Listen creates a listener bound to the configured endpoint
	Listen(config common.ServerConfig) (net.Listener, error)

	// Cleanup removes the endpoint from the system after a run
	Cleanup(config common.ServerConfig) error

	// GetName returns the name of the transport type (e.g., "unix", "tcp")
	GetName() string
}

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

// serverTransport implements the core single-shot receive functionality
// independent of the specific transport medium (unix, tcp, etc.)
type serverTransport struct {
	connector IServerConnector
}

// -----------------------------------------------------------
// Transport Factory Method (used for tcp, unix, etc.)
// -----------------------------------------------------------

// NewBaseServerTransport creates a new base server transport with the specified connector
func NewBaseServerTransport(connector IServerConnector) transport.IProbeServerTransport {
	return &serverTransport{connector: connector}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IProbeServerTransport)
// --------------------------------------------------------------------------

func (t *serverTransport) Receive(config common.ServerConfig) ([]byte, error) {
	// Create listener using the connector
	listener, err := t.connector.Listen(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %w", err)
	}
	defer listener.Close()

	Logger.Infof("%s server listening on %s", t.connector.GetName(), config.Endpoint)

	// Timeout in seconds, 0 blocks forever
	timeout := time.Duration(config.TimeoutSecond) * time.Second

	if timeout > 0 {
		if d, ok := listener.(interface{ SetDeadline(time.Time) error }); ok {
			if err := d.SetDeadline(time.Now().Add(timeout)); err != nil {
				return nil, fmt.Errorf("failed to set accept deadline: %w", err)
			}
		}
	}

	// Accept exactly one connection
	conn, err := listener.Accept()
	if err != nil {
		return nil, fmt.Errorf("failed to accept connection: %w", err)
	}
	defer conn.Close()

	common.ConnectionsAccepted.Inc()
	Logger.Debugf("Accepted connection on %s", config.Endpoint)

	if timeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return nil, fmt.Errorf("failed to set read deadline: %w", err)
		}
	}

	// Single bounded read into a fresh buffer. The wire content carries no
	// framing, so whatever one read returns is the payload.
	buf := make([]byte, config.BufferSize)
	n, err := conn.Read(buf)
	if n > 0 {
		common.BytesReceived.Add(n)
		Logger.Debugf("Read %d bytes from peer", n)
		return buf[:n], nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return nil, transport.ErrNoData
	}
	return nil, fmt.Errorf("failed to read payload: %w", err)
}

func (t *serverTransport) Cleanup(config common.ServerConfig) error {
	return t.connector.Cleanup(config)
}
