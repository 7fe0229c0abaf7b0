package usecase

import (
	"fmt"

	"github.com/google/go-github/v75/github"

	"github.com/herald-bot/herald/pkg/domain/model"
)

// issueStatusLabels maps handled issue actions to their display labels
var issueStatusLabels = map[string]string{
	"opened":   "opened",
	"reopened": "reopened",
	"closed":   "closed",
}

// transformIssue builds a notification for issue opened/reopened/closed
// actions; all other actions are suppressed.
func (uc *webhookUseCase) transformIssue(ev *github.IssuesEvent) model.TransformResult {
	info, err := model.NewIssueInfo(ev)
	if err != nil {
		return model.Failed(err)
	}

	status, ok := issueStatusLabels[info.Action]
	if !ok {
		return model.Suppress("unhandled issue action: " + info.Action)
	}

	text := fmt.Sprintf("[%s] Issue #%d %s: %s\nby @%s",
		info.Repository, info.Number, status, info.Title, info.User)

	// Body preview only when the issue is first opened
	if info.Action == "opened" {
		text += "\n" + truncateBody(info.Body, uc.truncateLength)
	}

	text += "\n" + info.URL

	return model.Notify(model.NewMessage(model.Text(text)))
}
