package usecase

import (
	"context"

	"github.com/getsentry/sentry-go"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/herald-bot/herald/pkg/domain/interfaces"
	"github.com/herald-bot/herald/pkg/domain/model"
)

const (
	// DefaultTruncateLength is the body preview limit in runes
	DefaultTruncateLength = 200

	// DefaultStarThreshold notifies on every star
	DefaultStarThreshold = 1
)

type webhookUseCase struct {
	routes         *model.RouteTable
	registry       interfaces.SessionRegistry
	renderer       interfaces.Renderer
	truncateLength int
	starThreshold  int
}

// Option is a functional option for the webhook use case
type Option func(*webhookUseCase)

// WithTruncateLength sets the body preview truncation limit
func WithTruncateLength(n int) Option {
	return func(uc *webhookUseCase) {
		if n > 0 {
			uc.truncateLength = n
		}
	}
}

// WithStarThreshold sets the star notification threshold: a star event is
// surfaced only when the stargazer count is a multiple of the threshold.
func WithStarThreshold(n int) Option {
	return func(uc *webhookUseCase) {
		if n > 0 {
			uc.starThreshold = n
		}
	}
}

// NewWebhook creates a new instance of WebhookUseCase. The renderer may be
// nil, in which case release notifications always use the text fallback.
func NewWebhook(routes *model.RouteTable, registry interfaces.SessionRegistry, renderer interfaces.Renderer, opts ...Option) interfaces.WebhookUseCase {
	uc := &webhookUseCase{
		routes:         routes,
		registry:       registry,
		renderer:       renderer,
		truncateLength: DefaultTruncateLength,
		starThreshold:  DefaultStarThreshold,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// IsConfigured reports whether a repository has configured destinations
func (uc *webhookUseCase) IsConfigured(repository string) bool {
	if repository == "" {
		return false
	}
	_, ok := uc.routes.Lookup(repository)
	return ok
}

// ProcessEvent transforms a webhook event and fans the resulting message
// out to the repository's destinations. The HTTP response has already been
// written by the time this runs; failures here are logged and reported,
// never surfaced to the webhook sender.
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx)

	destinations, ok := uc.routes.Lookup(event.Repository)
	if !ok {
		return goerr.New("repository not configured", goerr.V("repository", event.Repository))
	}

	result := uc.transform(ctx, event)

	switch result.Outcome {
	case model.OutcomeSuppress:
		logger.Debug("Notification suppressed",
			"id", event.ID,
			"type", event.Type,
			"action", event.Action,
			"repository", event.Repository,
			"reason", result.Reason,
		)
		return nil

	case model.OutcomeFail:
		err := goerr.Wrap(result.Err, "failed to transform webhook event",
			goerr.V("id", event.ID),
			goerr.V("type", event.Type),
			goerr.V("repository", event.Repository),
		)
		sentry.CaptureException(err)
		return err

	case model.OutcomeNotify:
		logger.Info("Dispatching notification",
			"id", event.ID,
			"type", event.Type,
			"action", event.Action,
			"repository", event.Repository,
			"destinations", len(destinations),
		)
		uc.dispatch(ctx, result.Message, destinations)
		return nil

	default:
		return goerr.New("unknown transform outcome", goerr.V("outcome", result.Outcome))
	}
}

// transform selects the transformer for the event type and applies it.
// Star and watch events share one transformer.
func (uc *webhookUseCase) transform(ctx context.Context, event *model.WebhookEvent) model.TransformResult {
	switch event.Type {
	case model.EventTypeIssues:
		ev, ok := event.Payload.(*github.IssuesEvent)
		if !ok {
			return model.Failed(goerr.New("payload is not an issues event"))
		}
		return uc.transformIssue(ev)

	case model.EventTypePullRequest:
		ev, ok := event.Payload.(*github.PullRequestEvent)
		if !ok {
			return model.Failed(goerr.New("payload is not a pull_request event"))
		}
		return uc.transformPullRequest(ev)

	case model.EventTypeStar:
		ev, ok := event.Payload.(*github.StarEvent)
		if !ok {
			return model.Failed(goerr.New("payload is not a star event"))
		}
		info, err := model.NewStarInfo(ev)
		if err != nil {
			return model.Failed(err)
		}
		return uc.transformStar(info)

	case model.EventTypeWatch:
		ev, ok := event.Payload.(*github.WatchEvent)
		if !ok {
			return model.Failed(goerr.New("payload is not a watch event"))
		}
		info, err := model.NewWatchInfo(ev)
		if err != nil {
			return model.Failed(err)
		}
		return uc.transformStar(info)

	case model.EventTypeRelease:
		ev, ok := event.Payload.(*github.ReleaseEvent)
		if !ok {
			return model.Failed(goerr.New("payload is not a release event"))
		}
		return uc.transformRelease(ctx, ev)

	default:
		return model.Suppress("unsupported event type: " + string(event.Type))
	}
}
