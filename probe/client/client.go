package client

import (
	"github.com/crossworlds/sockprobe/probe/common"
	"github.com/crossworlds/sockprobe/probe/transport"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("probe/client")

// ProbeClient delivers a single probe message.
type ProbeClient struct {
	config    common.ClientConfig
	transport transport.IProbeClientTransport
	message   common.Message
}

// NewProbeClient creates a new probe client
func NewProbeClient(config common.ClientConfig, transport transport.IProbeClientTransport) *ProbeClient {
	Logger.Infof("Created probe client")
	Logger.Infof(config.String())

	return &ProbeClient{
		config:    config,
		transport: transport,
		message:   common.NewMessage(config.Text),
	}
}

// Send connects to the endpoint with a single attempt and writes the
// message (text plus NUL terminator) in one call. Connect and write
// failures propagate immediately; there are no retries.
func (c *ProbeClient) Send() error {
	return c.transport.Deliver(c.config, c.message.WireBytes())
}
