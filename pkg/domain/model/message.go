package model

import "strings"

// SegmentKind identifies the kind of a message segment
type SegmentKind string

const (
	SegmentText       SegmentKind = "text"
	SegmentImage      SegmentKind = "image"
	SegmentMentionAll SegmentKind = "mention_all"
)

// Segment is one element of a platform-agnostic notification message.
// Exactly the fields for its kind are populated.
type Segment struct {
	Kind SegmentKind
	Text string // SegmentText
	Data []byte // SegmentImage
	MIME string // SegmentImage
}

// Text creates a text segment
func Text(s string) Segment {
	return Segment{Kind: SegmentText, Text: s}
}

// Image creates an image segment from raw bytes and a MIME type
func Image(data []byte, mime string) Segment {
	return Segment{Kind: SegmentImage, Data: data, MIME: mime}
}

// MentionAll creates a broadcast-mention segment; each platform renders it
// with its own mention-everyone primitive.
func MentionAll() Segment {
	return Segment{Kind: SegmentMentionAll}
}

// Message is a platform-agnostic notification composed of ordered segments.
// It is produced by a transformer and consumed exactly once by the
// dispatcher; it is never persisted.
type Message struct {
	Segments []Segment
}

// NewMessage creates a message from the given segments
func NewMessage(segments ...Segment) *Message {
	return &Message{Segments: segments}
}

// PlainText joins the text segments with newlines, skipping images and
// mentions. Used by platforms that need a text-only representation.
func (m *Message) PlainText() string {
	var parts []string
	for _, seg := range m.Segments {
		if seg.Kind == SegmentText && seg.Text != "" {
			parts = append(parts, seg.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// Images returns the image segments in order
func (m *Message) Images() []Segment {
	var images []Segment
	for _, seg := range m.Segments {
		if seg.Kind == SegmentImage {
			images = append(images, seg)
		}
	}
	return images
}
