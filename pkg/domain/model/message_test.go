package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/herald-bot/herald/pkg/domain/model"
)

func TestMessageSegments(t *testing.T) {
	msg := model.NewMessage(
		model.Text("release published"),
		model.Image([]byte{0x89, 0x50, 0x4e, 0x47}, "image/png"),
		model.Text("https://example.com"),
		model.MentionAll(),
	)

	gt.Value(t, msg.PlainText()).Equal("release published\nhttps://example.com")

	images := msg.Images()
	gt.Number(t, len(images)).Equal(1)
	gt.Value(t, images[0].MIME).Equal("image/png")
	gt.Number(t, len(images[0].Data)).Equal(4)
}
