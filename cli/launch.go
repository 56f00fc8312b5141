// Package cli is the uhrsim command line.
package cli

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var now = time.Now

type rootOptions struct {
	configPath string
	logLevel   string
}

// Launch runs the command line and exits with a non-zero status on error.
func Launch() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// NewRootCmd returns the uhrsim command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "uhrsim",
		Short:         "UHR PET detector scene builder",
		Long:          "builds the UHR detector scene with Cs-137 rods, exports it and runs the simulation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (panic, fatal, error, warn, info, debug, trace)")

	rootCmd.AddCommand(
		generateRunCmd(opts),
		generateExportCmd(opts),
		generateBBoxCmd(opts),
	)
	return rootCmd
}
