//go:build integration

package hermes

import (
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func skipWithoutNATS(t *testing.T) string {
	t.Helper()
	url := os.Getenv("NATS_URL")
	if url == "" {
		t.Skip("NATS_URL not set, skipping integration test")
	}
	return url
}

func TestIntegration_PubSub(t *testing.T) {
	natsURL := skipWithoutNATS(t)

	client, err := NewClient(Options{URL: natsURL, Token: os.Getenv("NATS_TOKEN")}, slog.Default())
	require.NoError(t, err)
	defer client.Close()

	received := make(chan ReplyGenerated, 1)
	err = client.Subscribe("swarm.replymate.test.>", func(subject string, data []byte) {
		var evt ReplyGenerated
		if json.Unmarshal(data, &evt) == nil {
			received <- evt
		}
	})
	require.NoError(t, err)

	// Give subscription time to propagate
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, client.Publish("swarm.replymate.test.reply", NewReplyGenerated("it", "hello", "local")))

	select {
	case evt := <-received:
		require.Equal(t, "hello", evt.Reply)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}
