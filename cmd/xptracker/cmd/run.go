package cmd

import (
	"context"
	"log/slog"
	"os"

	"xptracker-backend/lib/serviceutil"
	"xptracker-backend/lib/telemetry"
	"xptracker-backend/services/tracker"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrape every tracked character once, update the records and post the reports.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		tel, err := telemetry.SetupFromEnv(ctx, "cmd:xptracker")
		if err == nil {
			defer tel.Shutdown(ctx)
		} else if !os.IsNotExist(err) {
			serviceutil.Fatal("failed to setup telemetry", err)
		}

		service, err := tracker.FromConfig(readConfig())
		if err != nil {
			serviceutil.Fatal("failed to initialize tracker", err)
		}
		if err := service.Run(ctx); err != nil {
			serviceutil.Fatal("tracker run failed", err)
		}
		slog.Info("tracker run complete")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
