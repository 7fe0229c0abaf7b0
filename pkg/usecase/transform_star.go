package usecase

import (
	"fmt"

	"github.com/herald-bot/herald/pkg/domain/model"
)

// transformStar builds a notification when a repository gains a star (or a
// watcher, which GitHub delivers as a watch event with the same shape).
// Only the "created" action notifies, and only when the current count is a
// multiple of the configured threshold.
func (uc *webhookUseCase) transformStar(info *model.StarInfo) model.TransformResult {
	if info.Action != "created" {
		return model.Suppress("unhandled star action: " + info.Action)
	}

	if info.Count%uc.starThreshold != 0 {
		return model.Suppress(fmt.Sprintf("star count %d is not a multiple of threshold %d", info.Count, uc.starThreshold))
	}

	text := fmt.Sprintf("[%s] ⭐ %d stars (starred by @%s)\n%s",
		info.Repository, info.Count, info.User, info.RepositoryURL)

	return model.Notify(model.NewMessage(model.Text(text)))
}
