package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanView_PublicPost(t *testing.T) {
	post := &Post{PostID: 1, OwnerID: 1, IsPrivate: false}

	assert.True(t, post.CanView(1))
	assert.True(t, post.CanView(2))
}

func TestCanView_PrivatePost(t *testing.T) {
	post := &Post{PostID: 1, OwnerID: 1, IsPrivate: true}

	assert.True(t, post.CanView(1))
	assert.False(t, post.CanView(2))
}

func TestCanView_DeletedPostHiddenFromEveryone(t *testing.T) {
	deletedAt := time.Now()
	post := &Post{PostID: 1, OwnerID: 1, IsPrivate: false, DeletedAt: &deletedAt}

	assert.False(t, post.CanView(1))
	assert.False(t, post.CanView(2))
}

func TestIsOwnedBy(t *testing.T) {
	post := &Post{PostID: 1, OwnerID: 5}

	assert.True(t, post.IsOwnedBy(5))
	assert.False(t, post.IsOwnedBy(6))
}
