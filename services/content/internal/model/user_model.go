package model

import "time"

type UserModel struct {
	UserID       int64      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Lastname     string     `gorm:"type:varchar(255);not null" json:"lastname"`
	Firstname    string     `gorm:"type:varchar(255);not null" json:"firstname"`
	Username     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Age          int        `json:"age"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone        string     `gorm:"type:varchar(50);not null" json:"phone"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Birthday     *time.Time `gorm:"type:date" json:"birthday"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    time.Time  `gorm:"column:last_login" json:"last_login"`
}

func (UserModel) TableName() string {
	return "users"
}
