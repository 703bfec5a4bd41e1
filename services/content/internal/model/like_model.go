package model

import (
	"time"

	"gorm.io/gorm"
)

// LikeModel rows are guarded by a partial unique index on (user_id, post_id)
// where deleted_at is null - see migrations/00001_create_content_tables.sql.
type LikeModel struct {
	LikeID    int64          `gorm:"column:like_id;primaryKey;autoIncrement" json:"like_id"`
	PostID    int64          `gorm:"column:post_id;not null;index" json:"post_id"`
	UserID    int64          `gorm:"column:user_id;not null" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LikeModel) TableName() string {
	return "likes"
}
