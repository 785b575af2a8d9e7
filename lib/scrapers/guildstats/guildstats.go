package guildstats

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"xptracker-backend/lib/htmlutil"
	"xptracker-backend/lib/restyutil"
	"xptracker-backend/lib/telemetry"
	"xptracker-backend/lib/xpstore"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/guildstats")

const defaultBaseUrl = "https://guildstats.eu"

type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	// BaseUrl overrides the production site, tests point it at a
	// local server.
	BaseUrl string
	// Timeout bounds one fetch so a stuck endpoint cannot stall the
	// run. Defaults to 15s.
	Timeout time.Duration
	// InstrumentOutput, when set, dumps every exchange to disk.
	InstrumentOutput restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) *Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultBaseUrl
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 15
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetTimeout(timeout)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")

	telemetry.InstrumentResty(client, "scrapers/guildstats/http")
	restyutil.InstrumentClient(client, opts.InstrumentOutput)

	return &Client{http: client}
}

// FetchExperience scrapes the daily experience tab for one character
// and returns its date to raw-change-string table. The caller decides
// what a failure means, the pipeline treats it as "no data this run".
func (c *Client) FetchExperience(ctx context.Context, name string) (xpstore.DayChanges, error) {
	ctx, span := tracer.Start(ctx, "FetchExperience")
	defer span.End()
	span.SetAttributes(attribute.String("character", name))

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"nick": name,
			"tab":  "9",
		}).
		Get("/character")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, err
	}
	if res.IsError() {
		err := fmt.Errorf("guildstats returned status %d", res.StatusCode())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse document")
		return nil, err
	}

	days, err := parseExperienceTable(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "missing experience table")
		return nil, err
	}

	span.SetAttributes(attribute.Int("entries", len(days)))
	return days, nil
}

// parseExperienceTable reads the experience history rows out of the
// character page: one row per day, first cell the date, second the
// change. The header row and rows with fewer than two cells are
// skipped.
func parseExperienceTable(doc *goquery.Document) (xpstore.DayChanges, error) {
	tabs := doc.Find("div#tabs1")
	if tabs.Length() == 0 {
		return nil, fmt.Errorf("no experience tab in page")
	}
	table := tabs.Find("table.newTable")
	if table.Length() == 0 {
		return nil, fmt.Errorf("no experience table in page")
	}

	days := xpstore.DayChanges{}
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		date := htmlutil.CellText(cells.Eq(0))
		change := htmlutil.CellText(cells.Eq(1))
		if date == "" {
			return
		}
		days[date] = change
	})
	return days, nil
}
