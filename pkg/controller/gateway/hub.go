package gateway

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/herald-bot/herald/pkg/domain/interfaces"
	"github.com/herald-bot/herald/pkg/domain/model"
)

const helloTimeout = 10 * time.Second

// Hub is the registry of live platform sessions. Platform bot adapters
// connect over WebSocket and identify themselves with a hello frame;
// statically configured sessions (e.g. Slack) register at startup. At most
// one live connection per platform is kept; a newer connection replaces
// the old one.
type Hub struct {
	mu       sync.RWMutex
	statics  map[string]interfaces.Session
	sessions map[string]*session

	upgrader websocket.Upgrader
}

// NewHub creates an empty session hub
func NewHub() *Hub {
	return &Hub{
		statics:  make(map[string]interfaces.Session),
		sessions: make(map[string]*session),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

// RegisterStatic adds a built-in platform session that lives for the whole
// process, such as the Slack Web API session
func (h *Hub) RegisterStatic(sess interfaces.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statics[sess.Platform()] = sess
}

// Session returns the live session for a platform, if any. Static sessions
// take precedence over gateway connections claiming the same platform.
func (h *Hub) Session(platform string) (interfaces.Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if sess, ok := h.statics[platform]; ok {
		return sess, true
	}
	if sess, ok := h.sessions[platform]; ok {
		return sess, true
	}
	return nil, false
}

// Broadcast sends a broadcast frame addressed by the raw destination
// string to every connected gateway session. Each adapter resolves the
// target through its own channel-subscription registry, so delivery is
// best effort and a session with a full queue is skipped.
func (h *Hub) Broadcast(ctx context.Context, target string, msg *model.Message) error {
	logger := ctxlog.From(ctx)

	data, err := encodeBroadcastFrame(uuid.NewString(), target, msg)
	if err != nil {
		return err
	}

	h.mu.RLock()
	sessions := make([]*session, 0, len(h.sessions))
	for _, sess := range h.sessions {
		sessions = append(sessions, sess)
	}
	h.mu.RUnlock()

	if len(sessions) == 0 {
		logger.Debug("No gateway sessions connected for broadcast", "target", target)
		return nil
	}

	for _, sess := range sessions {
		if err := sess.enqueue(ctx, data); err != nil {
			logger.Warn("Dropped broadcast frame",
				"platform", sess.Platform(),
				"target", target,
				"error", err,
			)
		}
	}

	return nil
}

// HandleUpgrade upgrades an HTTP request to a gateway WebSocket
// connection. The adapter must identify its platform with a hello frame
// before any messages are routed to it.
func (h *Hub) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("Failed to upgrade gateway connection", "error", err)
		return
	}

	platform, err := readHello(conn)
	if err != nil {
		logger.Warn("Gateway handshake failed", "remote", conn.RemoteAddr().String(), "error", err)
		_ = conn.Close()
		return
	}

	sess := &session{
		id:       uuid.NewString(),
		platform: platform,
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, 16),
		done:     make(chan struct{}),
	}

	h.register(sess)

	logger.Info("Gateway session connected",
		"session_id", sess.id,
		"platform", platform,
		"remote", conn.RemoteAddr().String(),
	)

	go sess.writePump()
	go sess.readPump()
}

// register stores the session, replacing and closing any previous
// connection for the same platform
func (h *Hub) register(sess *session) {
	h.mu.Lock()
	prev := h.sessions[sess.platform]
	h.sessions[sess.platform] = sess
	h.mu.Unlock()

	if prev != nil {
		prev.close()
	}
}

// unregister removes the session if it is still the current one for its
// platform
func (h *Hub) unregister(sess *session) {
	h.mu.Lock()
	if h.sessions[sess.platform] == sess {
		delete(h.sessions, sess.platform)
	}
	h.mu.Unlock()

	sess.close()
}

// readHello waits for the identification frame from a new connection
func readHello(conn *websocket.Conn) (string, error) {
	if err := conn.SetReadDeadline(time.Now().Add(helloTimeout)); err != nil {
		return "", goerr.Wrap(err, "failed to set handshake deadline")
	}
	defer func() {
		_ = conn.SetReadDeadline(time.Time{})
	}()

	var hello Frame
	if err := conn.ReadJSON(&hello); err != nil {
		return "", goerr.Wrap(err, "failed to read hello frame")
	}
	if hello.Type != FrameTypeHello || hello.Platform == "" {
		return "", goerr.New("invalid hello frame",
			goerr.V("type", hello.Type),
			goerr.V("platform", hello.Platform),
		)
	}

	return hello.Platform, nil
}
