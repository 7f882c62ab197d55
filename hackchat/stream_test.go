package hackchat

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMockTransport(t *testing.T) *MockTransport {
	t.Helper()
	transport := NewMockTransport()
	require.NoError(t, transport.Connect(context.Background(), Identity{Nick: "gkbrk", Channel: "botDev"}))
	return transport
}

func TestEventStream_YieldsEventsThenEnds(t *testing.T) {
	transport := openMockTransport(t)
	transport.PushFrame([]byte(`{"cmd":"onlineAdd","nick":"gkbrk"}`))
	transport.PushFrame([]byte(`{"cmd":"chat","nick":"gkbrk","text":"Hey there!"}`))
	transport.CloseFromServer()

	stream := &EventStream{transport: transport}

	event, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, JoinRoom{Nick: "gkbrk"}, event)

	event, err = stream.Next()
	require.NoError(t, err)
	assert.Equal(t, Message{Nick: "gkbrk", Text: "Hey there!"}, event)

	_, err = stream.Next()
	assert.ErrorIs(t, err, io.EOF)

	// The end is sticky.
	_, err = stream.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestEventStream_DecodeFailureIsTerminal(t *testing.T) {
	transport := openMockTransport(t)
	transport.PushFrame([]byte(`{"cmd":"chat"`))
	transport.PushFrame([]byte(`{"cmd":"chat","nick":"gkbrk","text":"never seen"}`))

	stream := &EventStream{transport: transport}

	_, err := stream.Next()
	require.ErrorIs(t, err, ErrDecodeFailed)

	// A spent stream never resynchronizes, even with a valid frame
	// still buffered.
	_, err = stream.Next()
	assert.ErrorIs(t, err, ErrDecodeFailed)
}

func TestEventStream_AbnormalClose(t *testing.T) {
	transport := openMockTransport(t)
	reset := errors.New("connection reset by peer")
	transport.AbortFromServer(reset)

	stream := &EventStream{transport: transport}

	_, err := stream.Next()
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
	assert.ErrorIs(t, err, reset)
}

func TestEventStream_All(t *testing.T) {
	transport := openMockTransport(t)
	transport.PushFrame([]byte(`{"cmd":"onlineSet","nicks":["gkbrk"]}`))
	transport.PushFrame([]byte(`{"cmd":"chat","nick":"gkbrk","text":"one"}`))
	transport.PushFrame([]byte(`{"cmd":"chat","nick":"gkbrk","text":"two"}`))
	transport.CloseFromServer()

	stream := &EventStream{transport: transport}

	var events []Event
	for event, err := range stream.All() {
		require.NoError(t, err)
		events = append(events, event)
	}

	require.Len(t, events, 3)
	assert.Equal(t, OnlineSet{Nicks: []string{"gkbrk"}}, events[0])
	assert.Equal(t, Message{Nick: "gkbrk", Text: "one"}, events[1])
	assert.Equal(t, Message{Nick: "gkbrk", Text: "two"}, events[2])
}

func TestEventStream_AllYieldsErrorOnce(t *testing.T) {
	transport := openMockTransport(t)
	transport.PushFrame([]byte(`not a frame`))

	stream := &EventStream{transport: transport}

	var errs []error
	for _, err := range stream.All() {
		errs = append(errs, err)
	}

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrDecodeFailed)
}

func TestEventStream_UnknownFramesAreDelivered(t *testing.T) {
	transport := openMockTransport(t)
	transport.PushFrame([]byte(`{"cmd":"emote","nick":"gkbrk","text":"waves"}`))
	transport.CloseFromServer()

	stream := &EventStream{transport: transport}

	event, err := stream.Next()
	require.NoError(t, err)
	unknown, ok := event.(Unknown)
	require.True(t, ok, "expected Unknown, got %T", event)
	assert.Equal(t, "emote", unknown.Cmd)
}
