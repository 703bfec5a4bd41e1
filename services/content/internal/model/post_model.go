package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PostModel struct {
	PostID      int64          `gorm:"column:post_id;primaryKey;autoIncrement" json:"post_id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	OwnerID     int64          `gorm:"column:user_id;not null;index" json:"user_id"`
	IsPrivate   bool           `gorm:"not null;default:false" json:"is_private"`
	Tags        pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"tags"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PostModel) TableName() string {
	return "posts"
}
