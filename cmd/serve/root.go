package serve

import (
	"os"

	cmdUtil "github.com/crossworlds/sockprobe/cmd/util"
	"github.com/crossworlds/sockprobe/probe/common"
	"github.com/crossworlds/sockprobe/probe/server"
	"github.com/spf13/cobra"
)

var (
	serveCmdConfig = &common.ServerConfig{}
	ServeCmd       = &cobra.Command{
		Use:   "serve",
		Short: "Receive and verify a single probe message",
		Long: `Bind the endpoint, accept exactly one connection, read once into a
bounded buffer and verify the received bytes against the expected message.
Exits 0 only when a matching message was received. Configuration can be set
via command line flags or environment variables. The format of the
environment variables is SOCKPROBE_<flag> (e.g. SOCKPROBE_BUFFER_SIZE=64)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(cmdUtil.InitConfig)

	// add flags
	key := "endpoint"
	ServeCmd.PersistentFlags().String(key, common.DefaultEndpoint, cmdUtil.WrapString("The endpoint to bind: a socket path for the unix transport, host:port for tcp"))

	key = "expect"
	ServeCmd.PersistentFlags().String(key, common.DefaultText, cmdUtil.WrapString("The message text a client must deliver"))

	key = "buffer-size"
	ServeCmd.PersistentFlags().Int(key, common.DefaultBufferSize, cmdUtil.WrapString("Receive buffer capacity in bytes. Must exceed the wire length of the expected message (text plus one terminator byte)"))

	key = "timeout"
	ServeCmd.PersistentFlags().Int64(key, 0, cmdUtil.WrapString("Accept/read deadline in seconds. 0 blocks forever"))

	key = "unlink"
	ServeCmd.PersistentFlags().Bool(key, true, cmdUtil.WrapString("Remove the socket path after a successful run so a subsequent run can bind again (unix transport only)"))

	key = "force-bind"
	ServeCmd.PersistentFlags().Bool(key, false, cmdUtil.WrapString("Remove a stale socket path before binding instead of failing the bind (unix transport only)"))

	key = "log-level"
	ServeCmd.PersistentFlags().String(key, "info", cmdUtil.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))

	key = "print-metrics"
	ServeCmd.PersistentFlags().Bool(key, false, cmdUtil.WrapString("Print run counters in Prometheus text format on stdout after the run"))
}

// processConfig reads the configuration from the command line flags and environment variables
func processConfig(cmd *cobra.Command, _ []string) error {
	// bind the flags to viper
	if err := cmdUtil.BindCommandFlags(cmd); err != nil {
		return err
	}

	serveCmdConfig = cmdUtil.GetServerConfig()

	// fail early on an undersized buffer
	return serveCmdConfig.Validate()
}

// run performs a single receive-and-verify probe run
func run(cmd *cobra.Command, _ []string) error {
	if err := common.InitLoggers(serveCmdConfig.LogLevel); err != nil {
		return err
	}

	t, err := cmdUtil.GetServerTransport()
	if err != nil {
		return err
	}

	s, err := server.NewProbeServer(*serveCmdConfig, t)
	if err != nil {
		return err
	}

	serveErr := s.Serve()

	if printMetrics, _ := cmd.Flags().GetBool("print-metrics"); printMetrics {
		common.WriteMetrics(os.Stdout)
	}

	return serveErr
}
