package handler

import (
	"testing"

	"pulse-feed/pkg/logger"
	"pulse-feed/pkg/queue"

	"github.com/stretchr/testify/assert"
)

func TestHandle_KnownEventTypes(t *testing.T) {
	h := NewEventHandler(logger.New())

	assert.NoError(t, h.Handle(queue.NewPostViewedEvent(1, 2)))
	assert.NoError(t, h.Handle(queue.NewPostLikedEvent(1, 2)))
	assert.NoError(t, h.Handle(queue.NewPostCommentedEvent(1, 2, "hi")))
}

func TestHandle_UnknownEventType(t *testing.T) {
	h := NewEventHandler(logger.New())

	err := h.Handle(queue.Event{EventType: "mystery"})

	assert.Error(t, err)
}
