package send

import (
	"os"

	cmdUtil "github.com/crossworlds/sockprobe/cmd/util"
	"github.com/crossworlds/sockprobe/probe/client"
	"github.com/crossworlds/sockprobe/probe/common"
	"github.com/spf13/cobra"
)

var (
	sendCmdConfig = &common.ClientConfig{}
	SendCmd       = &cobra.Command{
		Use:   "send",
		Short: "Deliver a single probe message",
		Long: `Connect to the endpoint with a single attempt and write the message
(text plus one NUL terminator byte) in one call. Exits non-zero when the
connect or write fails; there are no retries. Configuration can be set via
command line flags or environment variables. The format of the environment
variables is SOCKPROBE_<flag> (e.g. SOCKPROBE_ENDPOINT=/tmp/probe.sock)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(cmdUtil.InitConfig)

	// add flags
	key := "endpoint"
	SendCmd.PersistentFlags().String(key, common.DefaultEndpoint, cmdUtil.WrapString("The endpoint to connect to: a socket path for the unix transport, host:port for tcp"))

	key = "message"
	SendCmd.PersistentFlags().String(key, common.DefaultText, cmdUtil.WrapString("The message text to deliver (a NUL terminator is appended on the wire)"))

	key = "timeout"
	SendCmd.PersistentFlags().Int64(key, 0, cmdUtil.WrapString("Dial/write deadline in seconds. 0 blocks forever"))

	key = "wait"
	SendCmd.PersistentFlags().Bool(key, false, cmdUtil.WrapString("Block until the socket path exists before the single connect attempt (unix transport only)"))

	key = "write-buffer"
	SendCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("The size of the socket write buffer (in KB, 0 keeps the OS default)"))

	key = "read-buffer"
	SendCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("The size of the socket read buffer (in KB, 0 keeps the OS default)"))

	key = "tcp-nodelay"
	SendCmd.PersistentFlags().Bool(key, true, cmdUtil.WrapString("Whether to enable TCP_NODELAY (tcp transport only)"))

	key = "tcp-keepalive"
	SendCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("The keepalive interval in seconds (tcp transport only)"))

	key = "tcp-linger"
	SendCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("The linger time in seconds (tcp transport only)"))

	key = "log-level"
	SendCmd.PersistentFlags().String(key, "info", cmdUtil.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))

	key = "print-metrics"
	SendCmd.PersistentFlags().Bool(key, false, cmdUtil.WrapString("Print run counters in Prometheus text format on stdout after the run"))
}

// processConfig reads the configuration from the command line flags and environment variables
func processConfig(cmd *cobra.Command, _ []string) error {
	// bind the flags to viper
	if err := cmdUtil.BindCommandFlags(cmd); err != nil {
		return err
	}

	sendCmdConfig = cmdUtil.GetClientConfig()
	return nil
}

// run performs a single delivery
func run(cmd *cobra.Command, _ []string) error {
	if err := common.InitLoggers(sendCmdConfig.LogLevel); err != nil {
		return err
	}

	t, err := cmdUtil.GetClientTransport()
	if err != nil {
		return err
	}

	c := client.NewProbeClient(*sendCmdConfig, t)
	sendErr := c.Send()

	if printMetrics, _ := cmd.Flags().GetBool("print-metrics"); printMetrics {
		common.WriteMetrics(os.Stdout)
	}

	return sendErr
}
