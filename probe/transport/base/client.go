package base

import (
	"fmt"
	"net"
	"time"

	"github.com/crossworlds/sockprobe/probe/common"
	"github.com/crossworlds/sockprobe/probe/transport"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("probe/transport")

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IClientConnector defines the interface for transport-specific connection operations
type IClientConnector interface {
	// Connect establishes a single connection based on the provided configuration
	Connect(config common.ClientConfig) (net.Conn, error)

	// Await blocks until the endpoint is ready to be connected to. It is
	// only called when the config requests it; transports without endpoint
	// readiness semantics return immediately.
	Await(config common.ClientConfig) error

	// UpgradeConnection applies protocol-specific settings to an established connection
	UpgradeConnection(conn net.Conn, config common.ClientConfig) error

	// GetName returns the name of the transport type (e.g., "unix", "tcp")
	GetName() string
}

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

// clientTransport implements the core single-shot delivery functionality
// independent of the specific transport medium (unix, tcp, etc.)
type clientTransport struct {
	connector IClientConnector
}

// -----------------------------------------------------------
// Transport Factory Method (used for tcp, unix, etc.)
// -----------------------------------------------------------

// NewBaseClientTransport creates a new base client transport with the specified connector
func NewBaseClientTransport(connector IClientConnector) transport.IProbeClientTransport {
	return &clientTransport{connector: connector}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IProbeClientTransport)
// --------------------------------------------------------------------------

func (t *clientTransport) Deliver(config common.ClientConfig, payload []byte) error {
	// Optionally wait for the endpoint to appear before the one connect
	// attempt. This is not a retry: the connect itself still happens once.
	if config.WaitForEndpoint {
		if err := t.connector.Await(config); err != nil {
			return fmt.Errorf("endpoint not available: %w", err)
		}
	}

	// Single connection attempt
	conn, err := t.connector.Connect(config)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", config.Endpoint, err)
	}
	defer conn.Close()

	// Apply protocol-specific socket settings
	if err := t.connector.UpgradeConnection(conn, config); err != nil {
		return fmt.Errorf("failed to upgrade connection to %s: %w", config.Endpoint, err)
	}

	if config.TimeoutSecond > 0 {
		timeout := time.Duration(config.TimeoutSecond) * time.Second
		if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
			return fmt.Errorf("failed to set write deadline: %w", err)
		}
	}

	// Write the full payload in one call
	n, err := conn.Write(payload)
	if err != nil {
		return fmt.Errorf("failed to send payload: %w", err)
	}
	if n != len(payload) {
		return fmt.Errorf("short write: sent %d of %d bytes", n, len(payload))
	}

	common.MessagesSent.Inc()
	common.BytesSent.Add(n)
	Logger.Infof("Delivered %d bytes to %s using %s transport", n, config.Endpoint, t.connector.GetName())

	return nil
}
