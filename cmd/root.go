package cmd

import (
	"fmt"
	"os"

	"ddrconf/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "ddrconf",
	Short: "DDR Configuration Tools",
	Long: `ddrconf inspects and compares DRAM controller and PHY register
configuration dumps. It can diff two dumps on the command line or serve
comparisons over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level so the CLI gets readable
		// ISO8601 timestamps instead of epoch seconds.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
