package server

import (
	"fmt"

	"github.com/crossworlds/sockprobe/probe/common"
	"github.com/crossworlds/sockprobe/probe/transport"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("probe/server")

// ProbeServer receives and verifies a single probe message.
//
// Usage:
//
//	s, err := server.NewProbeServer(
//		*config,
//		unix.NewUnixServerTransport(),
//	)
//	if err != nil {
//		return err
//	}
//	if err := s.Serve(); err != nil {
//		return err
//	}
type ProbeServer struct {
	config    common.ServerConfig
	transport transport.IProbeServerTransport
	message   common.Message
}

// NewProbeServer creates a new probe server. It fails if the configured
// receive buffer cannot hold the expected wire message.
func NewProbeServer(config common.ServerConfig, transport transport.IProbeServerTransport) (*ProbeServer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	Logger.Infof("Created probe server")
	Logger.Infof(config.String())

	return &ProbeServer{
		config:    config,
		transport: transport,
		message:   common.NewMessage(config.ExpectedText),
	}, nil
}

// Serve runs the full receive sequence once: listen, accept a single
// connection, read once, verify the leading bytes against the expected
// message, and remove the endpoint if so configured. It returns nil only
// when a matching message was received; every failure (listen, accept,
// read, zero read, mismatch) propagates immediately.
func (s *ProbeServer) Serve() error {
	data, err := s.transport.Receive(s.config)
	if err != nil {
		return err
	}

	if err := s.message.Verify(data); err != nil {
		common.VerificationsFailed.Inc()
		return err
	}
	common.VerificationsPassed.Inc()

	Logger.Infof("Received valid probe message (%d bytes)", len(data))

	// Unlink only after a successful verification, so a failed run leaves
	// the path in place for inspection
	if s.config.UnlinkSocket {
		if err := s.transport.Cleanup(s.config); err != nil {
			return fmt.Errorf("failed to remove endpoint: %w", err)
		}
		Logger.Debugf("Removed endpoint %s", s.config.Endpoint)
	}

	return nil
}
