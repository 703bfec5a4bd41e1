package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPostViewedEvent(t *testing.T) {
	ev := NewPostViewedEvent(42, 7)

	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, TopicPostViewed, ev.EventType)
	assert.Equal(t, int64(42), ev.PostID)
	assert.Equal(t, int64(7), ev.UserID)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestNewPostCommentedEvent(t *testing.T) {
	ev := NewPostCommentedEvent(42, 7, "nice post")

	assert.Equal(t, TopicPostCommented, ev.EventType)
	assert.Equal(t, "nice post", ev.Text)
}

func TestEvent_JSONTimestampsAreISO8601(t *testing.T) {
	registeredAt := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	ev := NewUserRegisteredEvent(7, registeredAt)

	body, err := json.Marshal(ev)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "user_registered", decoded["event_type"])
	assert.Equal(t, "2024-03-01T12:30:00Z", decoded["registered_at"])

	_, err = time.Parse(time.RFC3339, decoded["timestamp"].(string))
	assert.NoError(t, err)

	// post_id is omitted for user events
	_, hasPostID := decoded["post_id"]
	assert.False(t, hasPostID)
}

func TestEvent_RoundTrip(t *testing.T) {
	ev := NewPostLikedEvent(1, 2)

	body, err := json.Marshal(ev)
	assert.NoError(t, err)

	var decoded Event
	assert.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, ev.EventID, decoded.EventID)
	assert.Equal(t, ev.PostID, decoded.PostID)
	assert.Equal(t, ev.UserID, decoded.UserID)
}
