// Package notify publishes write notifications to PubNub so frontends
// can refresh listings without polling. Publishing is best-effort: a
// failed publish never fails the write that triggered it.
package notify

import (
	"context"
	"log/slog"

	pubnub "github.com/pubnub/go"

	"event-system/models"
	"event-system/utils"
)

const eventsChannel = "event-updates"

type Notifier struct {
	pubnub  *pubnub.PubNub
	breaker *utils.CircuitBreaker
}

func NewNotifier(pn *pubnub.PubNub) *Notifier {
	return &Notifier{
		pubnub:  pn,
		breaker: utils.NewCircuitBreaker("pubnub-publish"),
	}
}

func (n *Notifier) EventCreated(ctx context.Context, event *models.Event) {
	n.publish(ctx, map[string]any{
		"type":     "event_created",
		"event_id": event.ID,
		"slug":     event.Slug,
		"title":    event.Title,
	})
}

func (n *Notifier) EventUpdated(ctx context.Context, event *models.Event) {
	n.publish(ctx, map[string]any{
		"type":     "event_updated",
		"event_id": event.ID,
		"slug":     event.Slug,
	})
}

func (n *Notifier) BookingCreated(ctx context.Context, booking *models.Booking) {
	n.publish(ctx, map[string]any{
		"type":       "booking_created",
		"booking_id": booking.ID,
		"event_id":   booking.EventID,
	})
}

func (n *Notifier) publish(ctx context.Context, message map[string]any) {
	if n.pubnub == nil {
		return
	}

	_, err := n.breaker.Execute(ctx, func() (any, error) {
		_, _, err := n.pubnub.Publish().
			Channel(eventsChannel).
			Message(message).
			Execute()
		return nil, err
	})
	if err != nil {
		slog.Warn("notify: publish failed", "type", message["type"], "error", err)
	}
}
