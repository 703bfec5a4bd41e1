package entity

import "time"

type Like struct {
	LikeID    int64      `json:"like_id"`
	PostID    int64      `json:"post_id"`
	UserID    int64      `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"-"`
}
