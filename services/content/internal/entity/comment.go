package entity

import "time"

type Comment struct {
	CommentID int64      `json:"comment_id"`
	PostID    int64      `json:"post_id"`
	AuthorID  int64      `json:"user_id"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"-"`
}
