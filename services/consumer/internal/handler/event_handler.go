package handler

import (
	"fmt"

	"pulse-feed/pkg/logger"
	"pulse-feed/pkg/queue"
)

// EventHandler processes domain events delivered from the broker. It is the
// sink end of the pipeline; downstream systems (analytics, notifications)
// would hang off these methods.
type EventHandler struct {
	logger *logger.Logger
}

func NewEventHandler(log *logger.Logger) *EventHandler {
	return &EventHandler{logger: log}
}

// Handle routes an event by its type.
func (h *EventHandler) Handle(event queue.Event) error {
	switch event.EventType {
	case queue.TopicPostViewed:
		h.logger.Info("[CONSUMER] post_viewed: event_id=%s post_id=%d user_id=%d at %s",
			event.EventID, event.PostID, event.UserID, event.Timestamp)
	case queue.TopicPostLiked:
		h.logger.Info("[CONSUMER] post_liked: event_id=%s post_id=%d user_id=%d at %s",
			event.EventID, event.PostID, event.UserID, event.Timestamp)
	case queue.TopicPostCommented:
		h.logger.Info("[CONSUMER] post_commented: event_id=%s post_id=%d user_id=%d text=%q at %s",
			event.EventID, event.PostID, event.UserID, event.Text, event.Timestamp)
	case queue.TopicUserRegistered:
		h.logger.Info("[CONSUMER] user_registered: event_id=%s user_id=%d registered_at=%s",
			event.EventID, event.UserID, event.RegisteredAt)
	default:
		return fmt.Errorf("unknown event type: %s", event.EventType)
	}
	return nil
}
