package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"xptracker-backend/lib/notify"
	"xptracker-backend/lib/timezone"
	"xptracker-backend/lib/xparchive"
	"xptracker-backend/lib/xpstore"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/tracker")

// Fetcher is what the pipeline needs from the guildstats client.
type Fetcher interface {
	FetchExperience(ctx context.Context, name string) (xpstore.DayChanges, error)
}

type Service struct {
	fetcher   Fetcher
	snapshots xpstore.Repository[xpstore.Snapshot]
	bests     xpstore.Repository[xpstore.BestRecords]
	months    xpstore.Repository[xpstore.MonthTotals]
	notifier  notify.Notifier
	archive   *xparchive.Archive
	charFile  string
	now       func() time.Time
}

type ServiceOptions struct {
	Fetcher       Fetcher
	Snapshots     xpstore.Repository[xpstore.Snapshot]
	Bests         xpstore.Repository[xpstore.BestRecords]
	Months        xpstore.Repository[xpstore.MonthTotals]
	Notifier      notify.Notifier
	CharacterFile string
	// Archive is optional, nil disables the sqlite history.
	Archive *xparchive.Archive
	// Now defaults to timezone.Now, tests pin it.
	Now func() time.Time
}

func NewService(opts ServiceOptions) Service {
	now := opts.Now
	if now == nil {
		now = timezone.Now
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return Service{
		fetcher:   opts.Fetcher,
		snapshots: opts.Snapshots,
		bests:     opts.Bests,
		months:    opts.Months,
		notifier:  notifier,
		archive:   opts.Archive,
		charFile:  opts.CharacterFile,
		now:       now,
	}
}

// Run executes one full tracking pass: scrape every character,
// persist the snapshot when it changed, post the daily leaderboard,
// record personal bests and month totals, then archive the day.
//
// Per-character scrape failures and delivery failures are absorbed;
// only late-stage persistence faults make the run fail.
func (s Service) Run(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	names, err := xpstore.ReadCharacterList(s.charFile)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read character list")
		return fmt.Errorf("read character list: %w", err)
	}
	if len(names) == 0 {
		slog.WarnContext(ctx, "no characters to track, skipping run")
		return nil
	}
	span.SetAttributes(attribute.Int("characters", len(names)))

	snapshot := s.scrapeAll(ctx, names)

	previous := s.snapshots.Load()
	if !xpstore.Changed(previous, snapshot) {
		slog.InfoContext(ctx, "no new data since last run, nothing to do")
		return nil
	}
	err = s.snapshots.Save(snapshot)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to save snapshot")
		return fmt.Errorf("save snapshot: %w", err)
	}

	date := snapshot.ReferenceDate()
	if date == "" {
		slog.WarnContext(ctx, "no experience data for any character, nothing to report")
		return nil
	}
	span.SetAttributes(attribute.String("reference_date", date))

	ranking := Rank(snapshot, date)
	slog.InfoContext(ctx, "daily ranking computed", "date", date, "entries", len(ranking))

	s.deliver(ctx, leaderboardMessage(ranking, date))

	err = s.recordBests(ctx, ranking, date)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to persist best records")
		return err
	}

	err = s.recordMonth(ctx, ranking)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to persist month totals")
		return err
	}

	s.archiveDay(ctx, ranking, date)
	return nil
}

// scrapeAll fetches every character strictly in order. A failed fetch
// leaves the character in the snapshot with an empty history so the
// rest of the run can tell "tracked but no data" from "not tracked".
func (s Service) scrapeAll(ctx context.Context, names []string) xpstore.Snapshot {
	ctx, span := tracer.Start(ctx, "scrapeAll")
	defer span.End()

	snapshot := xpstore.Snapshot{}
	for _, name := range names {
		days, err := s.fetcher.FetchExperience(ctx, name)
		if err != nil {
			slog.WarnContext(ctx, "scrape failed, continuing", "character", name, "err", err)
			days = nil
		}
		if days == nil {
			days = xpstore.DayChanges{}
		}
		slog.InfoContext(ctx, "scraped character", "character", name, "entries", len(days))
		snapshot[name] = days
	}
	return snapshot
}

func (s Service) recordBests(ctx context.Context, ranking []Entry, date string) error {
	bests := s.bests.Load()
	beats := UpdateBests(bests, ranking, date)
	for _, beat := range beats {
		slog.InfoContext(
			ctx, "new personal best",
			"character", beat.Name,
			"gain", beat.Gain,
			"previous", beat.Previous,
		)
		s.deliver(ctx, personalBestMessage(beat))
	}
	if len(beats) == 0 {
		return nil
	}
	err := s.bests.Save(bests)
	if err != nil {
		return fmt.Errorf("save best records: %w", err)
	}
	return nil
}

func (s Service) recordMonth(ctx context.Context, ranking []Entry) error {
	now := s.now()
	month := timezone.MonthID(now)

	totals := s.months.Load()
	totals = AccumulateMonth(totals, month, ranking)
	err := s.months.Save(totals)
	if err != nil {
		return fmt.Errorf("save month totals: %w", err)
	}

	// rollup posts on the month's last day, once the final server
	// save has been counted
	if !timezone.IsLastDayOfMonth(now) {
		return nil
	}
	rollup := MonthRanking(totals)
	if len(rollup) == 0 {
		return nil
	}
	s.deliver(ctx, monthlyMessage(rollup, month))
	return nil
}

func (s Service) archiveDay(ctx context.Context, ranking []Entry, date string) {
	if s.archive == nil || len(ranking) == 0 {
		return
	}
	gains := make(map[string]int, len(ranking))
	for _, entry := range ranking {
		gains[entry.Name] = entry.Gain
	}
	err := s.archive.Push(ctx, date, gains)
	if err != nil {
		slog.ErrorContext(ctx, "failed to archive day gains", "date", date, "err", err)
	}
}

// deliver sends one message and absorbs failure, the next scheduled
// run is the retry mechanism.
func (s Service) deliver(ctx context.Context, msg notify.Message) {
	err := s.notifier.Send(ctx, msg)
	if err != nil {
		slog.ErrorContext(ctx, "notification failed", "title", msg.Title, "err", err)
	}
}
