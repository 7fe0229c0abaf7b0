package usecase

import (
	"fmt"

	"github.com/google/go-github/v75/github"

	"github.com/herald-bot/herald/pkg/domain/model"
)

// pullRequestStatus returns the display label for a handled pull request
// action, distinguishing merged from unmerged closes. The second return is
// false for unhandled actions.
func pullRequestStatus(action string, merged bool) (string, bool) {
	switch action {
	case "opened":
		return "opened", true
	case "reopened":
		return "reopened", true
	case "closed":
		if merged {
			return "merged", true
		}
		return "closed (unmerged)", true
	default:
		return "", false
	}
}

// transformPullRequest builds a notification for pull request
// opened/reopened/closed actions; all other actions are suppressed.
func (uc *webhookUseCase) transformPullRequest(ev *github.PullRequestEvent) model.TransformResult {
	info, err := model.NewPullRequestInfo(ev)
	if err != nil {
		return model.Failed(err)
	}

	status, ok := pullRequestStatus(info.Action, info.Merged)
	if !ok {
		return model.Suppress("unhandled pull request action: " + info.Action)
	}

	text := fmt.Sprintf("[%s] PR #%d %s: %s\n%s → %s\nby @%s",
		info.Repository, info.Number, status, info.Title,
		info.HeadRef, info.BaseRef, info.User)

	if info.Action == "opened" {
		text += "\n" + truncateBody(info.Body, uc.truncateLength)
	}

	text += "\n" + info.URL

	return model.Notify(model.NewMessage(model.Text(text)))
}
