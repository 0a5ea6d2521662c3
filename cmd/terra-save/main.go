// Command terra-save is the multi-command CLI unifying decrypt, encrypt,
// batch round-trip checking, corpus bundling, and the progress-streaming
// watch server. The single-purpose terra-decrypt and terra-encrypt
// binaries remain available for their narrow exit-code contract; this
// binary wraps the same internal packages behind a friendlier
// multi-verb interface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "terra-save",
		Short:         "Inspect, decrypt, and encrypt player save files",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newDecryptCommand(),
		newEncryptCommand(),
		newBatchCommand(),
		newBundleCommand(),
		newWatchCommand(),
	)
	return root
}
