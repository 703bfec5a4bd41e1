package persistent

import (
	"errors"
	"fmt"
	"time"

	"pulse-feed/services/content/internal/entity"
	"pulse-feed/services/content/internal/model"

	"gorm.io/gorm"
)

type ContentRepository interface {
	CreatePost(post *entity.Post) error
	GetPostByID(id int64) (*entity.Post, error)
	GetPostIncludingDeleted(id int64) (*entity.Post, error)
	UpdatePost(post *entity.Post) error
	ListPosts(requesterID int64, limit, offset int) ([]*entity.Post, error)
	SoftDeletePostCascade(postID int64) error
	HasActiveLike(userID, postID int64) (bool, error)
	CreateLike(like *entity.Like) error
	CreateComment(comment *entity.Comment) error
	ListComments(postID int64, limit, offset int) ([]*entity.Comment, error)
	CreateUser(user *entity.User) error
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) CreatePost(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

// GetPostByID returns an active post; soft-deleted rows read as not found.
func (r *contentRepository) GetPostByID(id int64) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("post_id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post %d: %w", id, entity.ErrNotFound)
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

// GetPostIncludingDeleted also matches soft-deleted rows, so a repeated delete
// can distinguish "never existed" from "already deleted".
func (r *contentRepository) GetPostIncludingDeleted(id int64) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Unscoped().Where("post_id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post %d: %w", id, entity.ErrNotFound)
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *contentRepository) UpdatePost(post *entity.Post) error {
	now := time.Now()
	err := r.db.Model(&model.PostModel{}).
		Where("post_id = ?", post.PostID).
		Updates(map[string]interface{}{
			"title":       post.Title,
			"description": post.Description,
			"is_private":  post.IsPrivate,
			"tags":        ToPostModel(post).Tags,
			"updated_at":  now,
		}).Error
	if err != nil {
		return err
	}
	post.UpdatedAt = now
	return nil
}

// ListPosts returns active posts the requester may see, ordered by post_id so
// pagination is stable.
func (r *contentRepository) ListPosts(requesterID int64, limit, offset int) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.db.
		Where("is_private = ? OR user_id = ?", false, requesterID).
		Order("post_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

// SoftDeletePostCascade marks the post and all of its active comments and
// likes deleted in one transaction. The predicates only touch rows with
// deleted_at IS NULL, so re-running the cascade is a no-op.
func (r *contentRepository) SoftDeletePostCascade(postID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		if err := tx.Model(&model.PostModel{}).
			Where("post_id = ? AND deleted_at IS NULL", postID).
			Update("deleted_at", now).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.CommentModel{}).
			Where("post_id = ? AND deleted_at IS NULL", postID).
			Update("deleted_at", now).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.LikeModel{}).
			Where("post_id = ? AND deleted_at IS NULL", postID).
			Update("deleted_at", now).Error; err != nil {
			return err
		}

		return nil
	})
}

func (r *contentRepository) HasActiveLike(userID, postID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

// CreateLike relies on the partial unique index on (user_id, post_id) as the
// authoritative duplicate guard; a constraint violation surfaces as
// ErrAlreadyExists.
func (r *contentRepository) CreateLike(like *entity.Like) error {
	likeModel := ToLikeModel(like)
	if err := r.db.Create(likeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("like for post %d by user %d: %w", like.PostID, like.UserID, entity.ErrAlreadyExists)
		}
		return err
	}
	*like = *ToLikeEntity(likeModel)
	return nil
}

func (r *contentRepository) CreateComment(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *contentRepository) ListComments(postID int64, limit, offset int) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	err := r.db.
		Where("post_id = ?", postID).
		Order("comment_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&commentModels).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *contentRepository) CreateUser(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.LastLogin.IsZero() {
		userModel.LastLogin = time.Now()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("user %q: %w", user.Username, entity.ErrAlreadyExists)
		}
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}
