package cmd

import (
	"fmt"
	"os"

	"github.com/crossworlds/sockprobe/cmd/send"
	"github.com/crossworlds/sockprobe/cmd/serve"
	"github.com/crossworlds/sockprobe/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "0.2.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "sockprobe",
		Short: "stream-socket connectivity prober",
		Long: fmt.Sprintf(`sockprobe (v%s)

A smoke test for stream-socket connectivity: one process binds a Unix
domain socket (or TCP endpoint), accepts a single connection and verifies
a fixed message; the other connects and delivers it.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of sockprobe",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sockprobe v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(serve.ServeCmd)
	RootCmd.AddCommand(send.SendCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "transport"
	RootCmd.PersistentFlags().String(key, "unix", util.WrapString("transport to use (unix, tcp)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
