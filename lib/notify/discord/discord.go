package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"xptracker-backend/lib/notify"
	"xptracker-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

type embedFooter struct {
	Text string `json:"text"`
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       int          `json:"color"`
	Footer      *embedFooter `json:"footer,omitempty"`
	Fields      []embedField `json:"fields,omitempty"`
}

type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

type Webhook struct {
	url    string
	client *resty.Client
}

// New returns a webhook notifier, or a Noop when the url is empty so
// callers never have to special-case a missing webhook.
func New(url string) notify.Notifier {
	if url == "" {
		slog.Info("discord webhook url not set, notifications disabled")
		return notify.Noop{}
	}

	client := resty.New()
	client.SetTimeout(time.Second * 10)
	telemetry.InstrumentResty(client, "notify/discord")

	return Webhook{url: url, client: client}
}

func (w Webhook) Send(ctx context.Context, msg notify.Message) error {
	e := embed{
		Title:       msg.Title,
		Description: msg.Description,
		Color:       msg.Color,
	}
	if msg.Footer != "" {
		e.Footer = &embedFooter{Text: msg.Footer}
	}
	for _, f := range msg.Fields {
		e.Fields = append(e.Fields, embedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}

	res, err := w.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(webhookPayload{Embeds: []embed{e}}).
		Post(w.url)
	if err != nil {
		return err
	}
	if res.IsError() {
		return fmt.Errorf("discord webhook returned %d: %s", res.StatusCode(), res.String())
	}

	slog.InfoContext(ctx, "posted to discord", "title", msg.Title, "status", res.StatusCode())
	return nil
}
