package queue

import (
	"time"

	"github.com/google/uuid"
)

const (
	TopicPostViewed     = "post_viewed"
	TopicPostLiked      = "post_liked"
	TopicPostCommented  = "post_commented"
	TopicUserRegistered = "user_registered"
)

// Topics lists every routing key bound on the content events exchange.
var Topics = []string{
	TopicPostViewed,
	TopicPostLiked,
	TopicPostCommented,
	TopicUserRegistered,
}

// Event is the JSON payload published to the broker. Timestamps marshal as
// RFC 3339 (ISO-8601).
type Event struct {
	EventID      string     `json:"event_id"`
	EventType    string     `json:"event_type"`
	Timestamp    time.Time  `json:"timestamp"`
	PostID       int64      `json:"post_id,omitempty"`
	UserID       int64      `json:"user_id,omitempty"`
	Text         string     `json:"text,omitempty"`
	RegisteredAt *time.Time `json:"registered_at,omitempty"`
}

func newEvent(eventType string) Event {
	return Event{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now().UTC(),
	}
}

func NewPostViewedEvent(postID, userID int64) Event {
	ev := newEvent(TopicPostViewed)
	ev.PostID = postID
	ev.UserID = userID
	return ev
}

func NewPostLikedEvent(postID, userID int64) Event {
	ev := newEvent(TopicPostLiked)
	ev.PostID = postID
	ev.UserID = userID
	return ev
}

func NewPostCommentedEvent(postID, userID int64, text string) Event {
	ev := newEvent(TopicPostCommented)
	ev.PostID = postID
	ev.UserID = userID
	ev.Text = text
	return ev
}

func NewUserRegisteredEvent(userID int64, registeredAt time.Time) Event {
	ev := newEvent(TopicUserRegistered)
	ev.UserID = userID
	registered := registeredAt.UTC()
	ev.RegisteredAt = &registered
	return ev
}
