package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"xptracker-backend/lib/notify"

	"github.com/stretchr/testify/require"
)

func TestNewWithoutUrl(t *testing.T) {
	n := New("")
	require.IsType(t, notify.Noop{}, n)
	require.NoError(t, n.Send(context.Background(), notify.Message{Title: "skipped"}))
}

func TestSend(t *testing.T) {
	var received webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n := New(server.URL)
	err := n.Send(context.Background(), notify.Message{
		Title:       "Daily XP Leaderboard",
		Description: "Top Gainer: Alice",
		Color:       notify.ColorLeaderboard,
		Footer:      "XP Tracker",
		Fields: []notify.Field{
			{Name: "1st Alice", Value: "+1,200 XP"},
		},
	})
	require.NoError(t, err)

	require.Len(t, received.Embeds, 1)
	e := received.Embeds[0]
	require.Equal(t, "Daily XP Leaderboard", e.Title)
	require.Equal(t, notify.ColorLeaderboard, e.Color)
	require.NotNil(t, e.Footer)
	require.Equal(t, "XP Tracker", e.Footer.Text)
	require.Len(t, e.Fields, 1)
	require.Equal(t, "+1,200 XP", e.Fields[0].Value)
}

func TestSendErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad webhook", http.StatusBadRequest)
	}))
	defer server.Close()

	n := New(server.URL)
	err := n.Send(context.Background(), notify.Message{Title: "nope"})
	require.Error(t, err)
}
