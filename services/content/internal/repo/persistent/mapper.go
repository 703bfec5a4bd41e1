package persistent

import (
	"time"

	"pulse-feed/services/content/internal/entity"
	"pulse-feed/services/content/internal/model"

	"gorm.io/gorm"
)

func deletedAtToTime(d gorm.DeletedAt) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		PostID:      m.PostID,
		Title:       m.Title,
		Description: m.Description,
		OwnerID:     m.OwnerID,
		IsPrivate:   m.IsPrivate,
		Tags:        []string(m.Tags),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAtToTime(m.DeletedAt),
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		PostID:      e.PostID,
		Title:       e.Title,
		Description: e.Description,
		OwnerID:     e.OwnerID,
		IsPrivate:   e.IsPrivate,
		Tags:        e.Tags,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		CommentID: m.CommentID,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		DeletedAt: deletedAtToTime(m.DeletedAt),
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		CommentID: e.CommentID,
		PostID:    e.PostID,
		AuthorID:  e.AuthorID,
		Text:      e.Text,
		CreatedAt: e.CreatedAt,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		LikeID:    m.LikeID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		DeletedAt: deletedAtToTime(m.DeletedAt),
	}
}

func ToLikeModel(e *entity.Like) *model.LikeModel {
	if e == nil {
		return nil
	}

	return &model.LikeModel{
		LikeID:    e.LikeID,
		PostID:    e.PostID,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		UserID:       m.UserID,
		Lastname:     m.Lastname,
		Firstname:    m.Firstname,
		Username:     m.Username,
		Age:          m.Age,
		Email:        m.Email,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
		Birthday:     m.Birthday,
		CreatedAt:    m.CreatedAt,
		LastLogin:    m.LastLogin,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		UserID:       e.UserID,
		Lastname:     e.Lastname,
		Firstname:    e.Firstname,
		Username:     e.Username,
		Age:          e.Age,
		Email:        e.Email,
		Phone:        e.Phone,
		PasswordHash: e.PasswordHash,
		Birthday:     e.Birthday,
		CreatedAt:    e.CreatedAt,
		LastLogin:    e.LastLogin,
	}
}
