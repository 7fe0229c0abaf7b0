package usecase

import (
	"context"
	"fmt"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/herald-bot/herald/pkg/domain/model"
)

// transformRelease builds a notification for published releases. GitHub
// also delivers created/edited actions for the same release; only
// "published" notifies so each release is surfaced once.
//
// The release notes are rendered to a PNG via the external rendering
// service. A published release is always worth surfacing, so any render
// failure degrades to a plain-text message instead of suppressing.
func (uc *webhookUseCase) transformRelease(ctx context.Context, ev *github.ReleaseEvent) model.TransformResult {
	logger := ctxlog.From(ctx)

	info, err := model.NewReleaseInfo(ev)
	if err != nil {
		return model.Failed(err)
	}

	if info.Action != "published" {
		return model.Suppress("unhandled release action: " + info.Action)
	}

	header := fmt.Sprintf("[%s] Release %s (%s) published by @%s",
		info.Repository, info.Name, info.TagName, info.Author)

	image, err := uc.renderReleaseNotes(ctx, info)
	if err != nil {
		logger.Warn("Failed to render release notes, falling back to text",
			"repository", info.Repository,
			"tag", info.TagName,
			"error", err,
		)
		fallback := fmt.Sprintf("%s\nRelease notes image for %s could not be rendered.\n%s",
			header, info.TagName, info.URL)
		return model.Notify(model.NewMessage(model.Text(fallback)))
	}

	return model.Notify(model.NewMessage(
		model.Text(header),
		model.Image(image, "image/png"),
		model.Text(info.URL),
	))
}

// renderReleaseNotes builds the release page and delegates rasterization
// to the rendering service
func (uc *webhookUseCase) renderReleaseNotes(ctx context.Context, info *model.ReleaseInfo) ([]byte, error) {
	if uc.renderer == nil {
		return nil, goerr.New("no renderer configured")
	}

	page, err := BuildReleasePage(info)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build release page")
	}

	image, err := uc.renderer.RenderPage(ctx, page, model.DefaultRenderOptions())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render release page",
			goerr.V("repository", info.Repository),
			goerr.V("tag", info.TagName),
		)
	}

	return image, nil
}
