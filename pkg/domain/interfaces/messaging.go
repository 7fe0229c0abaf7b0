package interfaces

import (
	"context"

	"github.com/herald-bot/herald/pkg/domain/model"
)

// Session is a live connection to one messaging platform, able to deliver
// a message to a channel id on that platform.
type Session interface {
	// Platform returns the platform identifier (e.g. "onebot", "slack")
	Platform() string

	// Send delivers a message to a channel on this platform
	Send(ctx context.Context, channelID string, msg *model.Message) error
}

// SessionRegistry is the messaging substrate boundary: a registry of
// currently connected platform sessions plus a broadcast primitive for
// destinations no session claims.
type SessionRegistry interface {
	// Session returns the live session for a platform, if any
	Session(platform string) (Session, bool)

	// Broadcast delivers a message addressed by its raw destination string
	// to every connected session, letting each resolve the target through
	// its own subscription registry
	Broadcast(ctx context.Context, target string, msg *model.Message) error
}
