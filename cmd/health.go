package cmd

import (
	"fmt"

	"track-manager/feature/health"

	"github.com/spf13/cobra"
)

var healthFixFlag bool

// healthCmd runs the health checks once.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the object store, the library directory and the state database",
	Long:  `Runs the same checks as GET /health. With --fix a missing bucket is created.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cliLogger(true))
		if err != nil {
			return err
		}

		report := health.NewService(rt.admin(), rt.cfg.Library, rt.db, rt.logger).Check(cmd.Context(), healthFixFlag)
		if err := writeJSON(report); err != nil {
			return err
		}
		if !report.Healthy() {
			return fmt.Errorf("health check degraded")
		}
		return nil
	},
}

func init() {
	healthCmd.Flags().BoolVar(&healthFixFlag, "fix", false, "Create a missing bucket")
	RootCmd.AddCommand(healthCmd)
}
