package main

import (
	"log/slog"
	"net/http"
	"os"

	"xptracker-backend/lib/configutil"
	"xptracker-backend/lib/serviceutil"
	"xptracker-backend/lib/telemetry"
	"xptracker-backend/lib/timezone"
	"xptracker-backend/services/tracker"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type DaemonConfig struct {
	tracker.Config
	// Port serves the health endpoint, 0 disables it.
	Port int `json:"port"`
}

// Server save on Tibia happens at 10:00 CET/CEST; by 10:45 guildstats
// has usually ingested the new day.
const defaultCronSpec = "45 10 * * *"

func main() {
	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(false)
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on environment variables")
	}

	config, err := configutil.ReadConfig[DaemonConfig]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}

	tel, err := telemetry.SetupFromEnv(ctx, "cmd:xptrackerd")
	if err == nil {
		defer tel.Shutdown(ctx)
		telemetry.InstrumentPerfStats(ctx)
	} else if !os.IsNotExist(err) {
		serviceutil.Fatal("failed to setup telemetry", err)
	}

	service, err := tracker.FromConfig(config.Config)
	if err != nil {
		serviceutil.Fatal("failed to initialize tracker", err)
	}

	spec := config.CronSpec
	if spec == "" {
		spec = defaultCronSpec
	}

	state := &runState{}
	runOnce := func() {
		err := service.Run(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "tracker run failed", "err", err)
		}
		state.record(timezone.Now(), err)
	}

	cronner := cron.New(cron.WithLocation(timezone.Location))
	if _, err := cronner.AddFunc(spec, runOnce); err != nil {
		serviceutil.Fatal("failed to schedule tracker run", err)
	}
	cronner.Start()
	defer cronner.Stop()

	slog.Info("scheduled tracker runs", "spec", spec, "tz", timezone.Location.String())

	if config.Port > 0 {
		mux := http.NewServeMux()
		mux.HandleFunc("/health", state.serveHealth)
		go serviceutil.StartHttpServer(config.Port, mux)
	}

	<-ctx.Done()
}
