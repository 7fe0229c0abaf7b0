package gateway

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"

	"github.com/herald-bot/herald/pkg/domain/model"
)

// Frame types exchanged with platform adapters
const (
	FrameTypeHello     = "hello"
	FrameTypeMessage   = "message"
	FrameTypeBroadcast = "broadcast"
)

// Frame is the JSON wire format of the gateway. Adapters send a hello
// frame after connecting; the gateway sends message frames addressed to a
// channel and broadcast frames addressed by raw destination strings.
type Frame struct {
	Type     string           `json:"type"`
	Platform string           `json:"platform,omitempty"` // hello
	ID       string           `json:"id,omitempty"`       // message, broadcast
	Channel  string           `json:"channel,omitempty"`  // message
	Target   string           `json:"target,omitempty"`   // broadcast
	Segments []SegmentPayload `json:"segments,omitempty"`
}

// SegmentPayload is the wire form of one message segment. Image data is
// base64 through encoding/json's []byte handling.
type SegmentPayload struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	Data []byte `json:"data,omitempty"`
	MIME string `json:"mime,omitempty"`
}

func encodeSegments(msg *model.Message) []SegmentPayload {
	segments := make([]SegmentPayload, 0, len(msg.Segments))
	for _, seg := range msg.Segments {
		segments = append(segments, SegmentPayload{
			Type: string(seg.Kind),
			Text: seg.Text,
			Data: seg.Data,
			MIME: seg.MIME,
		})
	}
	return segments
}

// encodeMessageFrame serializes a message frame addressed to a channel
func encodeMessageFrame(id, channel string, msg *model.Message) ([]byte, error) {
	data, err := json.Marshal(Frame{
		Type:     FrameTypeMessage,
		ID:       id,
		Channel:  channel,
		Segments: encodeSegments(msg),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode message frame")
	}
	return data, nil
}

// encodeBroadcastFrame serializes a broadcast frame addressed by the raw
// destination string
func encodeBroadcastFrame(id, target string, msg *model.Message) ([]byte, error) {
	data, err := json.Marshal(Frame{
		Type:     FrameTypeBroadcast,
		ID:       id,
		Target:   target,
		Segments: encodeSegments(msg),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode broadcast frame")
	}
	return data, nil
}
