package entity

import "time"

type Post struct {
	PostID      int64      `json:"post_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	OwnerID     int64      `json:"user_id"`
	IsPrivate   bool       `json:"is_private"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}

// CanView reports whether the requester may read this post: deleted posts are
// invisible to everyone, private posts only to their owner.
func (p *Post) CanView(requesterID int64) bool {
	if p.DeletedAt != nil {
		return false
	}
	return !p.IsPrivate || p.OwnerID == requesterID
}

func (p *Post) IsOwnedBy(requesterID int64) bool {
	return p.OwnerID == requesterID
}
