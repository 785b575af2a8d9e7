package tracker

import (
	"os"
	"path/filepath"
	"time"

	"xptracker-backend/lib/configutil/configdb"
	"xptracker-backend/lib/notify"
	"xptracker-backend/lib/notify/discord"
	"xptracker-backend/lib/notify/email"
	"xptracker-backend/lib/restyutil"
	"xptracker-backend/lib/scrapers/guildstats"
	"xptracker-backend/lib/xparchive"
	xparchivedb "xptracker-backend/lib/xparchive/db"
	"xptracker-backend/lib/xpstore"
)

type ScrapeConfig struct {
	TimeoutSeconds int `json:"timeout_seconds"`
	// InstrumentDir, when set, dumps every http exchange there.
	InstrumentDir string `json:"instrument_dir"`
}

type WebhookConfig struct {
	Url string `json:"url"`
}

type Config struct {
	// CharacterFile lists tracked characters, one per line.
	CharacterFile string `json:"character_file"`
	// DataDir holds the JSON state files.
	DataDir string           `json:"data_dir"`
	Scrape  ScrapeConfig     `json:"scrape"`
	Webhook WebhookConfig    `json:"webhook"`
	Smtp    email.SmtpConfig `json:"smtp"`
	// Archive is optional, leave empty to disable sqlite history.
	Archive configdb.Struct `json:"archive"`
	// CronSpec schedules daemon runs, defaults to shortly after
	// server save.
	CronSpec string `json:"cron_spec"`
}

func (c Config) dataPath(name string) string {
	dir := c.DataDir
	if dir == "" {
		dir = "data"
	}
	return filepath.Join(dir, name)
}

func (c Config) SnapshotRepo() xpstore.Repository[xpstore.Snapshot] {
	return xpstore.NewFileRepository(
		c.dataPath("xp_log.json"),
		func() xpstore.Snapshot { return xpstore.Snapshot{} },
	)
}

func (c Config) BestsRepo() xpstore.Repository[xpstore.BestRecords] {
	return xpstore.NewFileRepository(
		c.dataPath("best_daily_xp.json"),
		func() xpstore.BestRecords { return xpstore.BestRecords{} },
	)
}

func (c Config) MonthsRepo() xpstore.Repository[xpstore.MonthTotals] {
	return xpstore.NewFileRepository(
		c.dataPath("monthly_xp.json"),
		func() xpstore.MonthTotals { return xpstore.MonthTotals{} },
	)
}

// Notifier builds the delivery fan-out. The webhook url can come from
// the environment, a missing destination degrades to a no-op rather
// than failing.
func (c Config) Notifier() notify.Notifier {
	webhookUrl := os.Getenv("DISCORD_WEBHOOK_URL")
	if webhookUrl == "" {
		webhookUrl = c.Webhook.Url
	}
	return notify.Multi{
		discord.New(webhookUrl),
		email.New(c.Smtp),
	}
}

// FromConfig wires a ready-to-run Service.
func FromConfig(config Config) (Service, error) {
	var instrument restyutil.InstrumentOutput
	if config.Scrape.InstrumentDir != "" {
		instrument = restyutil.NewFilesystemOutput(config.Scrape.InstrumentDir)
	}
	fetcher := guildstats.NewClient(guildstats.ClientOptions{
		Timeout:          time.Duration(config.Scrape.TimeoutSeconds) * time.Second,
		InstrumentOutput: instrument,
	})

	var archive *xparchive.Archive
	if config.Archive.File != "" || config.Archive.Url != "" {
		db, err := config.Archive.OpenDB(xparchivedb.Schema)
		if err != nil {
			return Service{}, err
		}
		a := xparchive.NewArchive(db)
		archive = &a
	}

	characterFile := config.CharacterFile
	if characterFile == "" {
		characterFile = "characters.txt"
	}

	return NewService(ServiceOptions{
		Fetcher:       fetcher,
		Snapshots:     config.SnapshotRepo(),
		Bests:         config.BestsRepo(),
		Months:        config.MonthsRepo(),
		Notifier:      config.Notifier(),
		CharacterFile: characterFile,
		Archive:       archive,
	}), nil
}
