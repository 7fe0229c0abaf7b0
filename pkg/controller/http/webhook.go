package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"

	"github.com/herald-bot/herald/pkg/domain/interfaces"
	"github.com/herald-bot/herald/pkg/domain/model"
	"github.com/herald-bot/herald/pkg/domain/types"
	"github.com/herald-bot/herald/pkg/utils/async"
)

// Response bodies are part of the webhook contract with the sender
const (
	responseOK               = "OK"
	responseInvalidPayload   = "Invalid Payload"
	responseInvalidSignature = "Invalid Signature"
	responseNotConfigured    = "Repository not configured"
)

// WebhookHandler handles GitHub webhook deliveries. The response is
// decided here, at classification time; transformation and delivery run in
// the background and never influence what the sender sees.
type WebhookHandler struct {
	secret    string
	webhookUC interfaces.WebhookUseCase
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(secret string, webhookUC interfaces.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{
		secret:    secret,
		webhookUC: webhookUC,
	}
}

// Handle processes webhook requests
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("Failed to read request body", "error", err)
		writeText(w, http.StatusBadRequest, responseInvalidPayload)
		return
	}
	defer r.Body.Close()

	// Authentication gates everything: a delivery with a bad signature is
	// rejected before its payload is even parsed
	if !VerifySignature(body, r.Header.Get(types.HeaderSignature), h.secret) {
		logger.Warn("Invalid webhook signature", "delivery_id", r.Header.Get(types.HeaderDelivery))
		writeText(w, http.StatusForbidden, responseInvalidSignature)
		return
	}

	eventType := r.Header.Get(types.HeaderEvent)
	event, err := buildEvent(eventType, r.Header.Get(types.HeaderDelivery), body)
	if err != nil {
		logger.Error("Failed to parse webhook payload", "event_type", eventType, "error", err)
		writeText(w, http.StatusBadRequest, responseInvalidPayload)
		return
	}

	// Unknown repositories are acknowledged, not rejected: the sender did
	// nothing wrong and must not retry
	if !h.webhookUC.IsConfigured(event.Repository) {
		logger.Info("Repository not configured, ignoring event",
			"repository", event.Repository,
			"event_type", eventType,
		)
		writeText(w, http.StatusOK, responseNotConfigured)
		return
	}

	if !event.Type.IsSupported() {
		logger.Info("Ignoring unsupported event type", "event_type", eventType)
		writeText(w, http.StatusOK, responseOK)
		return
	}

	// Ack first, process in the background: transformation, rendering and
	// delivery failures stay invisible to the webhook sender
	async.Dispatch(ctx, func(ctx context.Context) error {
		return h.webhookUC.ProcessEvent(ctx, event)
	})

	writeText(w, http.StatusOK, responseOK)
}

// buildEvent constructs the event envelope from the delivery headers and
// parsed payload. Event types without a typed payload still get their
// repository probed so routing can acknowledge them correctly.
func buildEvent(eventType, deliveryID string, body []byte) (*model.WebhookEvent, error) {
	event := &model.WebhookEvent{
		ID:         deliveryID,
		Type:       model.EventType(eventType),
		ReceivedAt: time.Now(),
		RawPayload: body,
	}

	if !event.Type.IsSupported() {
		event.Type = model.EventTypeUnknown

		var probe struct {
			Repository struct {
				FullName string `json:"full_name"`
			} `json:"repository"`
		}
		if err := json.Unmarshal(body, &probe); err != nil {
			return nil, err
		}
		event.Repository = probe.Repository.FullName
		return event, nil
	}

	payload, err := github.ParseWebHook(eventType, body)
	if err != nil {
		return nil, err
	}
	event.Payload = payload

	switch e := payload.(type) {
	case *github.IssuesEvent:
		event.Action = e.GetAction()
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()
	case *github.PullRequestEvent:
		event.Action = e.GetAction()
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()
	case *github.ReleaseEvent:
		event.Action = e.GetAction()
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()
	case *github.StarEvent:
		event.Action = e.GetAction()
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()
	case *github.WatchEvent:
		event.Action = e.GetAction()
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()
	}

	return event, nil
}
