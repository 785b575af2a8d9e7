package notify

import (
	"context"
	"log/slog"
)

// Colors used across report embeds.
const (
	ColorLeaderboard  = 0xf1c40f
	ColorPersonalBest = 0x2ecc71
	ColorNeutral      = 0x636e72
	ColorMonthly      = 0x9b59b6
)

type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Message is one logical report: a daily leaderboard, a personal best
// announcement or a monthly rollup. How it is rendered is up to the
// destination.
type Message struct {
	Title       string
	Description string
	Color       int
	Footer      string
	Fields      []Field
}

// Notifier delivers a message to one destination. Implementations
// must be independent of each other, a failed delivery never blocks
// other messages or the rest of the run.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// Noop is what you get when a destination is not configured. The run
// proceeds as if delivery succeeded.
type Noop struct{}

func (Noop) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "notification skipped, no destination configured", "title", msg.Title)
	return nil
}
