package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Server configuration struct
// --------------------------------------------------------------------------

// ServerConfig holds all configuration parameters for the receiving role.
type ServerConfig struct {
	// Endpoint is the socket path (unix) or address (tcp) to bind
	Endpoint string

	// ExpectedText is the message text a client must deliver
	ExpectedText string

	// BufferSize is the capacity of the receive buffer in bytes.
	// It must exceed the wire length of the expected message.
	BufferSize int

	// TimeoutSecond arms accept and read deadlines. 0 blocks forever.
	TimeoutSecond int64

	// UnlinkSocket removes the socket path after a successful run
	UnlinkSocket bool

	// ForceBind removes a stale socket path before binding instead of
	// failing the bind
	ForceBind bool

	// Logging configuration
	LogLevel string
}

// Validate checks the buffer capacity invariant against the expected message
func (c *ServerConfig) Validate() error {
	wireLen := len(c.ExpectedText) + 1
	if c.BufferSize <= wireLen {
		return fmt.Errorf("buffer size %d must exceed wire message length %d", c.BufferSize, wireLen)
	}
	return nil
}

// String returns a formatted string representation of the configuration
func (c *ServerConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Probe Server")
	addField("Endpoint", c.Endpoint)
	addField("Expected Message", c.ExpectedText)
	addField("Buffer Size", fmt.Sprintf("%d bytes", c.BufferSize))
	addField("Timeout", formatTimeout(c.TimeoutSecond))
	addField("Unlink Socket", strconv.FormatBool(c.UnlinkSocket))
	addField("Force Bind", strconv.FormatBool(c.ForceBind))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}

// --------------------------------------------------------------------------
// Client configuration struct
// --------------------------------------------------------------------------

// SocketConf holds generic socket buffer settings
type SocketConf struct {
	WriteBufferSize int
	ReadBufferSize  int
}

// TCPConf holds TCP-specific socket settings (ignored by the unix transport)
type TCPConf struct {
	TCPNoDelay      bool
	TCPKeepAliveSec int
	TCPLingerSec    int
}

// ClientConfig holds all configuration parameters for the probing role.
type ClientConfig struct {
	// Endpoint is the socket path (unix) or address (tcp) to connect to
	Endpoint string

	// Text is the message text to deliver (a NUL terminator is appended
	// on the wire)
	Text string

	// TimeoutSecond arms dial and write deadlines. 0 blocks forever.
	TimeoutSecond int64

	// WaitForEndpoint blocks until the endpoint exists before the single
	// connect attempt (unix transport only)
	WaitForEndpoint bool

	// Socket settings
	SocketConf SocketConf
	TCPConf    TCPConf

	// Logging configuration
	LogLevel string
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Probe Client")
	addField("Endpoint", c.Endpoint)
	addField("Message", c.Text)
	addField("Timeout", formatTimeout(c.TimeoutSecond))
	addField("Wait For Endpoint", strconv.FormatBool(c.WaitForEndpoint))

	addSection("Socket")
	addField("Write Buffer", fmt.Sprintf("%d bytes", c.SocketConf.WriteBufferSize))
	addField("Read Buffer", fmt.Sprintf("%d bytes", c.SocketConf.ReadBufferSize))
	addField("TCP NoDelay", strconv.FormatBool(c.TCPConf.TCPNoDelay))
	addField("TCP KeepAlive", fmt.Sprintf("%d sec", c.TCPConf.TCPKeepAliveSec))
	addField("TCP Linger", fmt.Sprintf("%d sec", c.TCPConf.TCPLingerSec))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}

// formatTimeout renders a timeout value, 0 meaning no deadline at all
func formatTimeout(seconds int64) string {
	if seconds <= 0 {
		return "none (blocks forever)"
	}
	return fmt.Sprintf("%d sec", seconds)
}
