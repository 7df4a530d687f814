package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryViewer_Go/internal/domain"
)

// fakeSource is a StateSource whose transitions the test drives
type fakeSource struct {
	state   domain.LoaderState
	updates chan domain.LoaderState
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		state:   domain.NewLoaderState(),
		updates: make(chan domain.LoaderState, 4),
	}
}

func (f *fakeSource) State() domain.LoaderState { return f.state }

func (f *fakeSource) Subscribe() (<-chan domain.LoaderState, func()) {
	return f.updates, func() {}
}

type sseEvent struct {
	id, typ string
	data    Event
}

func readEvent(t *testing.T, r *bufio.Reader) sseEvent {
	t.Helper()
	var ev sseEvent
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			return ev
		case strings.HasPrefix(line, "id: "):
			ev.id = strings.TrimPrefix(line, "id: ")
		case strings.HasPrefix(line, "event: "):
			ev.typ = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev.data))
		}
	}
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: EventTypeState, Timestamp: 5, Payload: map[string]int{"a": 1}})

	require.NoError(t, err)
	assert.Equal(t,
		"id: 1\nevent: inventory.state\ndata: {\"id\":\"1\",\"type\":\"inventory.state\",\"timestamp\":5,\"payload\":{\"a\":1}}\n\n",
		string(msg))
}

func TestStream_SendsStateAndTransitions(t *testing.T) {
	source := newFakeSource()
	server := httptest.NewServer(NewStream(source))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	r := bufio.NewReader(resp.Body)

	connected := readEvent(t, r)
	assert.Equal(t, EventTypeConnected, connected.typ)

	initial := readEvent(t, r)
	assert.Equal(t, EventTypeState, initial.typ)
	assert.NotEmpty(t, initial.id)

	msg := "HTTP error! status: 500"
	source.updates <- domain.LoaderState{Items: []domain.InventoryItem{}, Error: &msg}

	next := readEvent(t, r)
	assert.Equal(t, EventTypeState, next.typ)
	payload, ok := next.data.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, msg, payload["error"])
	assert.Equal(t, false, payload["loading"])
}

func TestStream_EndsWhenSourceCloses(t *testing.T) {
	source := newFakeSource()
	close(source.updates)

	rec := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewStream(source).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end after the source closed")
	}
	assert.Contains(t, rec.Body.String(), "event: "+EventTypeConnected)
	assert.Contains(t, rec.Body.String(), "event: "+EventTypeState)
}

func TestStream_Keepalive(t *testing.T) {
	source := newFakeSource()
	stream := &Stream{source: source, keepalive: 10 * time.Millisecond}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	rec := httptest.NewRecorder()
	stream.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx))

	assert.Contains(t, rec.Body.String(), "event: "+EventTypeKeepalive)
}
