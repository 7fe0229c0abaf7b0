package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"

	"github.com/herald-bot/herald/pkg/domain/model"
)

// dispatch fans a message out to the configured destinations, in order,
// one at a time. Destinations are independent: a malformed entry is
// skipped and a delivery failure is logged without aborting the loop. The
// webhook response was decided at classification time, so nothing here
// reports back to the sender.
func (uc *webhookUseCase) dispatch(ctx context.Context, msg *model.Message, destinations []string) {
	logger := ctxlog.From(ctx)

	for _, raw := range destinations {
		deliveryID := uuid.NewString()

		dest, err := model.ParseDestination(raw)
		if err != nil {
			logger.Warn("Skipping malformed destination",
				"destination", raw,
				"delivery_id", deliveryID,
				"error", err,
			)
			continue
		}

		if session, ok := uc.registry.Session(dest.Platform); ok {
			if err := session.Send(ctx, dest.Channel, msg); err != nil {
				logger.Error("Failed to deliver notification",
					"platform", dest.Platform,
					"channel", dest.Channel,
					"delivery_id", deliveryID,
					"error", err,
				)
			} else {
				logger.Debug("Delivered notification",
					"platform", dest.Platform,
					"channel", dest.Channel,
					"delivery_id", deliveryID,
				)
			}
			continue
		}

		// No live session for the platform: hand the raw destination to the
		// broadcast primitive so connected sessions can resolve it through
		// their own subscription registries.
		if err := uc.registry.Broadcast(ctx, raw, msg); err != nil {
			logger.Error("Failed to broadcast notification",
				"destination", raw,
				"delivery_id", deliveryID,
				"error", err,
			)
		}
	}
}
