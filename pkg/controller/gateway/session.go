package gateway

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/m-mizutani/goerr/v2"

	"github.com/herald-bot/herald/pkg/domain/model"
)

// session is one connected platform adapter. Outbound frames go through a
// buffered channel drained by writePump, so concurrent senders never write
// to the connection directly. The send channel is never closed; shutdown
// is signalled through done so enqueue can never panic on a closed
// channel.
type session struct {
	id       string
	platform string
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	done     chan struct{}

	closeOnce sync.Once
}

// Platform returns the platform identifier claimed in the hello frame
func (s *session) Platform() string {
	return s.platform
}

// Send delivers a message to a channel on this platform
func (s *session) Send(ctx context.Context, channelID string, msg *model.Message) error {
	data, err := encodeMessageFrame(uuid.NewString(), channelID, msg)
	if err != nil {
		return err
	}
	return s.enqueue(ctx, data)
}

// enqueue hands a frame to the write pump. A session that cannot keep up
// gets its frame rejected rather than blocking the dispatcher.
func (s *session) enqueue(ctx context.Context, data []byte) error {
	select {
	case <-s.done:
		return goerr.New("session is closed",
			goerr.V("platform", s.platform),
			goerr.V("session_id", s.id),
		)
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "context cancelled while enqueueing frame",
			goerr.V("platform", s.platform))
	case s.send <- data:
		return nil
	default:
		return goerr.New("session send queue is full",
			goerr.V("platform", s.platform),
			goerr.V("session_id", s.id),
		)
	}
}

func (s *session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

// readPump drains inbound frames. Adapters have nothing to say after the
// hello frame today, but reading keeps control frames processed and
// detects disconnects.
func (s *session) readPump() {
	defer s.hub.unregister(s)

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump serializes all writes to the connection
func (s *session) writePump() {
	defer func() {
		_ = s.conn.Close()
	}()

	for {
		select {
		case <-s.done:
			return
		case data := <-s.send:
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}
}
