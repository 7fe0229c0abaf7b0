package interfaces

import (
	"context"

	"github.com/herald-bot/herald/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// IsConfigured reports whether a repository has a route. The HTTP
	// handler uses it to decide the acknowledgement body before any
	// transformation runs.
	IsConfigured(repository string) bool

	// ProcessEvent transforms a webhook event and dispatches the resulting
	// notification to the repository's destinations
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}
