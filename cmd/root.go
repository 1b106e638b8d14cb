package cmd

import (
	"fmt"
	"os"

	"track-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "track-manager",
	Short: "Track Manager Service",
	Long: `Track Manager keeps a local audio library and an object store in sync.
It reports which tracks need uploading, uploads them with per-track error isolation
and resolves playback URLs for local, remote and hybrid libraries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// CLI errors always go to a console logger with ISO8601 timestamps
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
