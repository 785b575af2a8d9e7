package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"xptracker-backend/lib/configutil"
	"xptracker-backend/lib/serviceutil"
	"xptracker-backend/lib/telemetry"
	"xptracker-backend/services/tracker"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "xptracker",
	Short: "xptracker follows the daily XP gains of Tibia characters on guildstats.eu.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)
		if err := godotenv.Load(); err != nil {
			slog.Debug("no .env file found, relying on environment variables")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readConfig loads the config file. A missing file is fine, every
// setting has a default and the webhook can come from the
// environment.
func readConfig() tracker.Config {
	config, err := configutil.ReadConfig[tracker.Config](configPath)
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	return config
}
