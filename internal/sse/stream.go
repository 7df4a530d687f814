package sse

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/InventoryViewer_Go/internal/domain"
	"github.com/osse101/InventoryViewer_Go/internal/logger"
)

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StateSource publishes loader state snapshots
type StateSource interface {
	State() domain.LoaderState
	Subscribe() (<-chan domain.LoaderState, func())
}

// Stream serves the loader state as server-sent events: the current state on
// connect, then one event per transition. It only observes; loads are
// triggered elsewhere.
type Stream struct {
	source    StateSource
	keepalive time.Duration
}

// NewStream creates a stream over source using KeepaliveInterval
func NewStream(source StateSource) *Stream {
	return &Stream{source: source, keepalive: KeepaliveInterval}
}

func newEvent(eventType string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
}

// FormatSSEMessage formats an SSE event for transmission
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	// "id: <id>\nevent: <type>\ndata: <json>\n\n"
	msg := make([]byte, 0, len(data)+len(event.ID)+len(event.Type)+24)
	msg = append(msg, "id: "+event.ID+"\n"...)
	msg = append(msg, "event: "+event.Type+"\n"...)
	msg = append(msg, "data: "...)
	msg = append(msg, data...)
	msg = append(msg, "\n\n"...)
	return msg, nil
}

func (s *Stream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, ErrMsgStreamUnsupported, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// Subscribe before reading the current state so no transition is missed
	updates, cancel := s.source.Subscribe()
	defer cancel()

	ctx := r.Context()
	log := logger.FromContext(ctx)
	clientID := uuid.NewString()
	log.Info(LogMsgClientConnected, "client_id", clientID)
	defer log.Info(LogMsgClientDisconnected, "client_id", clientID)

	send := func(e Event) bool {
		msg, err := FormatSSEMessage(e)
		if err != nil {
			log.Error(LogMsgWriteError, "error", err)
			return true
		}
		if _, err := w.Write(msg); err != nil {
			log.Warn(LogMsgWriteError, "error", err)
			return false
		}
		flusher.Flush()
		return true
	}

	if !send(newEvent(EventTypeConnected, map[string]string{"client_id": clientID})) ||
		!send(newEvent(EventTypeState, s.source.State())) {
		return
	}

	s.loop(ctx, updates, send)
}

func (s *Stream) loop(ctx context.Context, updates <-chan domain.LoaderState, send func(Event) bool) {
	ticker := time.NewTicker(s.keepalive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case state, ok := <-updates:
			if !ok {
				// loader closed
				return
			}
			if !send(newEvent(EventTypeState, state)) {
				return
			}

		case <-ticker.C:
			if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
				return
			}
		}
	}
}
