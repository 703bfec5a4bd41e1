package entity

import "time"

type User struct {
	UserID       int64      `json:"user_id"`
	Lastname     string     `json:"lastname"`
	Firstname    string     `json:"firstname"`
	Username     string     `json:"username"`
	Age          int        `json:"age,omitempty"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	PasswordHash string     `json:"-"`
	Birthday     *time.Time `json:"birthday,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    time.Time  `json:"last_login"`
}
