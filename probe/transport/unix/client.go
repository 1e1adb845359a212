package unix

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/crossworlds/sockprobe/probe/common"
	"github.com/crossworlds/sockprobe/probe/transport"
	"github.com/crossworlds/sockprobe/probe/transport/base"
	"github.com/fsnotify/fsnotify"
)

// clientConnector implements the IClientConnector interface for Unix sockets
type clientConnector struct{}

// --------------------------------------------------------------------------
// Interface Methods (docu see base.IClientConnector)
// --------------------------------------------------------------------------

func (c *clientConnector) GetName() string {
	return "unix"
}

func (c *clientConnector) Connect(config common.ClientConfig) (net.Conn, error) {
	if config.TimeoutSecond > 0 {
		timeout := time.Duration(config.TimeoutSecond) * time.Second
		return net.DialTimeout("unix", config.Endpoint, timeout)
	}
	return net.Dial("unix", config.Endpoint)
}

// Await blocks until the socket path exists, watching its parent directory
// for create events. The connect attempt afterwards still happens exactly
// once.
func (c *clientConnector) Await(config common.ClientConfig) error {
	// Fast path: the path already exists
	if _, err := os.Stat(config.Endpoint); err == nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(config.Endpoint)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	// Re-check after the watch is in place, the path may have appeared in
	// between
	if _, err := os.Stat(config.Endpoint); err == nil {
		return nil
	}

	var timeoutCh <-chan time.Time
	if config.TimeoutSecond > 0 {
		timeoutCh = time.After(time.Duration(config.TimeoutSecond) * time.Second)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed while waiting for %s", config.Endpoint)
			}
			if event.Has(fsnotify.Create) {
				if _, err := os.Stat(config.Endpoint); err == nil {
					return nil
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher closed while waiting for %s", config.Endpoint)
			}
			return fmt.Errorf("watch error while waiting for %s: %w", config.Endpoint, err)
		case <-timeoutCh:
			return fmt.Errorf("timed out waiting for %s to appear", config.Endpoint)
		}
	}
}

func (c *clientConnector) UpgradeConnection(conn net.Conn, config common.ClientConfig) error {
	unixConn, ok := conn.(*net.UnixConn)
	if !ok {
		return fmt.Errorf("expected unix connection, got %T", conn)
	}

	if config.SocketConf.WriteBufferSize > 0 {
		if err := unixConn.SetWriteBuffer(config.SocketConf.WriteBufferSize); err != nil {
			return fmt.Errorf("failed to set write buffer: %w", err)
		}
	}
	if config.SocketConf.ReadBufferSize > 0 {
		if err := unixConn.SetReadBuffer(config.SocketConf.ReadBufferSize); err != nil {
			return fmt.Errorf("failed to set read buffer: %w", err)
		}
	}

	return nil
}

// --------------------------------------------------------------------------
// Client Transport Factory Method
// --------------------------------------------------------------------------

// NewUnixClientTransport creates a new Unix client transport
func NewUnixClientTransport() transport.IProbeClientTransport {
	return base.NewBaseClientTransport(&clientConnector{})
}
