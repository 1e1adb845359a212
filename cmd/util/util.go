package util

import (
	"fmt"
	"strings"

	"github.com/crossworlds/sockprobe/probe/common"
	"github.com/crossworlds/sockprobe/probe/transport"
	"github.com/crossworlds/sockprobe/probe/transport/tcp"
	"github.com/crossworlds/sockprobe/probe/transport/unix"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("sockprobe")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// GetServerConfig reads server configuration from viper
func GetServerConfig() *common.ServerConfig {
	return &common.ServerConfig{
		Endpoint:      viper.GetString("endpoint"),
		ExpectedText:  viper.GetString("expect"),
		BufferSize:    viper.GetInt("buffer-size"),
		TimeoutSecond: viper.GetInt64("timeout"),
		UnlinkSocket:  viper.GetBool("unlink"),
		ForceBind:     viper.GetBool("force-bind"),
		LogLevel:      viper.GetString("log-level"),
	}
}

// GetClientConfig reads client configuration from viper
func GetClientConfig() *common.ClientConfig {
	return &common.ClientConfig{
		Endpoint:        viper.GetString("endpoint"),
		Text:            viper.GetString("message"),
		TimeoutSecond:   viper.GetInt64("timeout"),
		WaitForEndpoint: viper.GetBool("wait"),
		SocketConf: common.SocketConf{
			WriteBufferSize: viper.GetInt("write-buffer") * 1024,
			ReadBufferSize:  viper.GetInt("read-buffer") * 1024,
		},
		TCPConf: common.TCPConf{
			TCPNoDelay:      viper.GetBool("tcp-nodelay"),
			TCPKeepAliveSec: viper.GetInt("tcp-keepalive"),
			TCPLingerSec:    viper.GetInt("tcp-linger"),
		},
		LogLevel: viper.GetString("log-level"),
	}
}

// GetServerTransport creates a server transport based on configuration
func GetServerTransport() (transport.IProbeServerTransport, error) {
	switch viper.GetString("transport") {
	case "unix":
		return unix.NewUnixServerTransport(), nil
	case "tcp":
		return tcp.NewTCPServerTransport(), nil
	default:
		return nil, fmt.Errorf("invalid transport %s", viper.GetString("transport"))
	}
}

// GetClientTransport creates a client transport based on configuration
func GetClientTransport() (transport.IProbeClientTransport, error) {
	switch viper.GetString("transport") {
	case "unix":
		return unix.NewUnixClientTransport(), nil
	case "tcp":
		return tcp.NewTCPClientTransport(), nil
	default:
		return nil, fmt.Errorf("invalid transport %s", viper.GetString("transport"))
	}
}
