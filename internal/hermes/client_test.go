package hermes

import (
	"io"
	"log/slog"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewMessage(t *testing.T) {
	msg, err := newMessage(SubjectReplyGenerated, NewReplyGenerated("c-1", "hello", "local"))
	require.NoError(t, err)

	assert.Equal(t, SubjectReplyGenerated, msg.Subject)
	assert.Equal(t, "application/json", msg.Header.Get("Content-Type"))
	assert.Contains(t, string(msg.Data), `"correlation_id":"c-1"`)
}

func TestNewMessage_MarshalError(t *testing.T) {
	_, err := newMessage(SubjectReplyGenerated, func() {})
	assert.Error(t, err)
}

func TestDispatch_PassesSubjectAndData(t *testing.T) {
	var gotSubject, gotData string
	dispatch(discardLogger(), func(subject string, data []byte) {
		gotSubject, gotData = subject, string(data)
	}, &nats.Msg{Subject: SubjectTranscriptSubmitted, Data: []byte(`{}`)})

	assert.Equal(t, SubjectTranscriptSubmitted, gotSubject)
	assert.Equal(t, `{}`, gotData)
}

func TestDispatch_RecoversPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		dispatch(discardLogger(), func(string, []byte) {
			panic("boom")
		}, &nats.Msg{Subject: SubjectReplyRequested})
	})
}
