package slack

import (
	"bytes"
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/herald-bot/herald/pkg/domain/interfaces"
	"github.com/herald-bot/herald/pkg/domain/model"
)

// PlatformID is the platform identifier Slack destinations use, e.g.
// "slack:C0123456789"
const PlatformID = "slack"

// session delivers notifications through the Slack Web API. Unlike
// gateway-connected platforms it is configured statically and is always
// "live" while the process runs.
type session struct {
	client *slack.Client
}

// NewSession creates a Slack platform session using a bot token
func NewSession(token string) interfaces.Session {
	return &session{
		client: slack.New(token),
	}
}

// Platform returns the platform identifier
func (s *session) Platform() string {
	return PlatformID
}

// Send delivers a message to a Slack channel. Text and mention segments
// collapse into one post; image segments are uploaded as files with the
// text attached as the initial comment.
func (s *session) Send(ctx context.Context, channelID string, msg *model.Message) error {
	text := renderText(msg)
	images := msg.Images()

	if len(images) == 0 {
		_, _, err := s.client.PostMessageContext(ctx, channelID,
			slack.MsgOptionText(text, false),
		)
		if err != nil {
			return goerr.Wrap(err, "failed to post message to Slack", goerr.V("channel", channelID))
		}
		return nil
	}

	for i, image := range images {
		params := slack.UploadFileV2Parameters{
			Channel:  channelID,
			Reader:   bytes.NewReader(image.Data),
			Filename: "notification.png",
			FileSize: len(image.Data),
		}
		// Attach the text to the first upload only
		if i == 0 && text != "" {
			params.InitialComment = text
		}

		if _, err := s.client.UploadFileV2Context(ctx, params); err != nil {
			return goerr.Wrap(err, "failed to upload image to Slack", goerr.V("channel", channelID))
		}
	}

	return nil
}

// renderText flattens text and mention segments into Slack mrkdwn
func renderText(msg *model.Message) string {
	var buf bytes.Buffer
	for _, seg := range msg.Segments {
		switch seg.Kind {
		case model.SegmentText:
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(seg.Text)
		case model.SegmentMentionAll:
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString("<!channel>")
		}
	}
	return buf.String()
}
