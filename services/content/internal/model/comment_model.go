package model

import (
	"time"

	"gorm.io/gorm"
)

type CommentModel struct {
	CommentID int64          `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	PostID    int64          `gorm:"column:post_id;not null;index" json:"post_id"`
	AuthorID  int64          `gorm:"column:user_id;not null" json:"user_id"`
	Text      string         `gorm:"type:varchar(255);not null" json:"text"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CommentModel) TableName() string {
	return "comments"
}
