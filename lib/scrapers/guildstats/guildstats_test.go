package guildstats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"xptracker-backend/lib/xpstore"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const characterPage = `
<html><body>
<div id="tabs1">
  <table class="newTable">
    <tr><th>Date</th><th>Exp change</th><th>Rank</th></tr>
    <tr><td>2024-03-09</td><td>+891,011</td><td>3</td></tr>
    <tr><td>2024-03-10</td><td>+1,200</td><td>5</td></tr>
    <tr><td colspan="3">server save notice</td></tr>
    <tr><td>2024-03-11</td><td>0</td><td>-</td></tr>
  </table>
</div>
</body></html>`

func TestParseExperienceTable(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(characterPage))
	require.NoError(t, err)

	days, err := parseExperienceTable(doc)
	require.NoError(t, err)
	require.Equal(t, xpstore.DayChanges{
		"2024-03-09": "+891,011",
		"2024-03-10": "+1,200",
		"2024-03-11": "0",
	}, days)
}

func TestParseExperienceTableMissing(t *testing.T) {
	cases := []struct {
		name string
		page string
	}{
		{name: "no tabs div", page: `<html><body><p>nothing here</p></body></html>`},
		{name: "no table", page: `<html><body><div id="tabs1"><p>empty</p></div></body></html>`},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(test.page))
			require.NoError(t, err)

			_, err = parseExperienceTable(doc)
			require.Error(t, err)
		})
	}
}

func TestFetchExperience(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Write([]byte(characterPage))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseUrl: server.URL, Timeout: time.Second * 5})
	days, err := client.FetchExperience(context.Background(), "Alice")
	require.NoError(t, err)
	require.Len(t, days, 3)
	require.Contains(t, requestedPath, "/character")
	require.Contains(t, requestedPath, "nick=Alice")
	require.Contains(t, requestedPath, "tab=9")
}

func TestFetchExperienceServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseUrl: server.URL})
	_, err := client.FetchExperience(context.Background(), "Alice")
	require.Error(t, err)
}
