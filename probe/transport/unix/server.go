package unix

import (
	"fmt"
	"net"
	"os"

	"github.com/crossworlds/sockprobe/probe/common"
	"github.com/crossworlds/sockprobe/probe/transport"
	"github.com/crossworlds/sockprobe/probe/transport/base"
)

// serverConnector implements the IServerConnector interface for Unix sockets
type serverConnector struct{}

// --------------------------------------------------------------------------
// Interface Methods (docu see base.IServerConnector)
// --------------------------------------------------------------------------

func (c *serverConnector) GetName() string {
	return "unix"
}

func (c *serverConnector) Listen(config common.ServerConfig) (net.Listener, error) {
	socketPath := config.Endpoint

	// A stale socket path makes the bind fail unless force-bind removes it
	if config.ForceBind {
		if err := os.RemoveAll(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove existing socket: %w", err)
		}
	}

	// Create Unix socket listener
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create unix socket: %w", err)
	}

	// The net package unlinks the path when the listener closes. Unlinking
	// is an explicit, configurable step here (see Cleanup), so that default
	// is turned off.
	if ul, ok := listener.(*net.UnixListener); ok {
		ul.SetUnlinkOnClose(false)
	}

	return listener, nil
}

func (c *serverConnector) Cleanup(config common.ServerConfig) error {
	if err := os.Remove(config.Endpoint); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to unlink socket %s: %w", config.Endpoint, err)
	}
	return nil
}

// --------------------------------------------------------------------------
// Server Transport Factory Method
// --------------------------------------------------------------------------

// NewUnixServerTransport creates a new Unix server transport
func NewUnixServerTransport() transport.IProbeServerTransport {
	return base.NewBaseServerTransport(&serverConnector{})
}
