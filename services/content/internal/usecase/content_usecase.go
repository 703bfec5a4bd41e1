package usecase

import (
	"fmt"
	"unicode/utf8"

	"pulse-feed/pkg/logger"
	"pulse-feed/pkg/queue"
	"pulse-feed/services/content/internal/entity"
	"pulse-feed/services/content/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const maxCommentLength = 255

// EventPublisher enqueues a domain event after the database change committed.
type EventPublisher interface {
	Dispatch(event queue.Event)
}

type RegisterUserInput struct {
	Lastname  string
	Firstname string
	Username  string
	Password  string
	Age       int
	Email     string
	Phone     string
	Birthday  string
}

type ContentUseCase interface {
	CreatePost(ownerID int64, title, description string, isPrivate bool, tags []string) (*entity.Post, error)
	GetPost(postID, requesterID int64) (*entity.Post, error)
	UpdatePost(postID, requesterID int64, title, description string, isPrivate bool, tags []string) (*entity.Post, error)
	DeletePost(postID, requesterID int64) error
	ListPosts(requesterID int64, limit, offset int) ([]*entity.Post, error)
	ViewPost(postID, requesterID int64) (*entity.Post, error)
	LikePost(postID, requesterID int64) (*entity.Like, error)
	CommentPost(postID, requesterID int64, text string) (*entity.Comment, error)
	ListComments(postID, requesterID int64, limit, offset int) ([]*entity.Comment, error)
	RegisterUser(input RegisterUserInput) (*entity.User, error)
}

type contentUseCase struct {
	contentRepo persistent.ContentRepository
	publisher   EventPublisher
	logger      *logger.Logger
}

func NewContentUseCase(
	contentRepo persistent.ContentRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) ContentUseCase {
	return &contentUseCase{
		contentRepo: contentRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// getViewablePost is the shared read path: active post or NotFound, then the
// visibility predicate or PermissionDenied.
func (uc *contentUseCase) getViewablePost(postID, requesterID int64) (*entity.Post, error) {
	if postID <= 0 || requesterID <= 0 {
		return nil, fmt.Errorf("post id and user id must be positive: %w", entity.ErrInvalidArgument)
	}

	post, err := uc.contentRepo.GetPostByID(postID)
	if err != nil {
		return nil, err
	}

	if !post.CanView(requesterID) {
		return nil, fmt.Errorf("no access to post %d: %w", postID, entity.ErrPermissionDenied)
	}

	return post, nil
}

func (uc *contentUseCase) CreatePost(ownerID int64, title, description string, isPrivate bool, tags []string) (*entity.Post, error) {
	if ownerID <= 0 {
		return nil, fmt.Errorf("user id must be positive: %w", entity.ErrInvalidArgument)
	}
	if title == "" {
		return nil, fmt.Errorf("title must not be empty: %w", entity.ErrInvalidArgument)
	}

	if tags == nil {
		tags = []string{}
	}

	post := &entity.Post{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
		IsPrivate:   isPrivate,
		Tags:        tags,
	}

	if err := uc.contentRepo.CreatePost(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (uc *contentUseCase) GetPost(postID, requesterID int64) (*entity.Post, error) {
	return uc.getViewablePost(postID, requesterID)
}

func (uc *contentUseCase) UpdatePost(postID, requesterID int64, title, description string, isPrivate bool, tags []string) (*entity.Post, error) {
	if postID <= 0 || requesterID <= 0 {
		return nil, fmt.Errorf("post id and user id must be positive: %w", entity.ErrInvalidArgument)
	}
	if title == "" {
		return nil, fmt.Errorf("title must not be empty: %w", entity.ErrInvalidArgument)
	}

	post, err := uc.contentRepo.GetPostByID(postID)
	if err != nil {
		return nil, err
	}

	if !post.IsOwnedBy(requesterID) {
		return nil, fmt.Errorf("only the owner can update post %d: %w", postID, entity.ErrPermissionDenied)
	}

	post.Title = title
	post.Description = description
	post.IsPrivate = isPrivate
	if tags == nil {
		tags = []string{}
	}
	post.Tags = tags

	if err := uc.contentRepo.UpdatePost(post); err != nil {
		uc.logger.Error("Failed to update post %d: %v", postID, err)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// DeletePost soft-deletes the post and cascades to its comments and likes.
// Deleting an already-deleted post is a no-op that still reports success, so
// an interrupted cascade can be repaired by re-running the same call.
func (uc *contentUseCase) DeletePost(postID, requesterID int64) error {
	if postID <= 0 || requesterID <= 0 {
		return fmt.Errorf("post id and user id must be positive: %w", entity.ErrInvalidArgument)
	}

	post, err := uc.contentRepo.GetPostIncludingDeleted(postID)
	if err != nil {
		return err
	}

	if !post.IsOwnedBy(requesterID) {
		return fmt.Errorf("only the owner can delete post %d: %w", postID, entity.ErrPermissionDenied)
	}

	if err := uc.contentRepo.SoftDeletePostCascade(postID); err != nil {
		uc.logger.Error("Failed to delete post %d: %v", postID, err)
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

func (uc *contentUseCase) ListPosts(requesterID int64, limit, offset int) ([]*entity.Post, error) {
	if requesterID <= 0 {
		return nil, fmt.Errorf("user id must be positive: %w", entity.ErrInvalidArgument)
	}
	if limit <= 0 || offset < 0 {
		return nil, fmt.Errorf("limit must be positive and offset non-negative: %w", entity.ErrInvalidArgument)
	}

	posts, err := uc.contentRepo.ListPosts(requesterID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list posts: %v", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (uc *contentUseCase) ViewPost(postID, requesterID int64) (*entity.Post, error) {
	post, err := uc.getViewablePost(postID, requesterID)
	if err != nil {
		return nil, err
	}

	uc.publisher.Dispatch(queue.NewPostViewedEvent(post.PostID, requesterID))

	return post, nil
}

func (uc *contentUseCase) LikePost(postID, requesterID int64) (*entity.Like, error) {
	if _, err := uc.getViewablePost(postID, requesterID); err != nil {
		return nil, err
	}

	// Fast path only: the partial unique index is what actually prevents
	// concurrent duplicates.
	liked, err := uc.contentRepo.HasActiveLike(requesterID, postID)
	if err != nil {
		uc.logger.Error("Failed to check like status: %v", err)
		return nil, fmt.Errorf("failed to check like status: %w", err)
	}
	if liked {
		return nil, fmt.Errorf("post %d already liked by user %d: %w", postID, requesterID, entity.ErrAlreadyExists)
	}

	like := &entity.Like{
		PostID: postID,
		UserID: requesterID,
	}

	if err := uc.contentRepo.CreateLike(like); err != nil {
		return nil, err
	}

	uc.publisher.Dispatch(queue.NewPostLikedEvent(like.PostID, like.UserID))

	return like, nil
}

func (uc *contentUseCase) CommentPost(postID, requesterID int64, text string) (*entity.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("comment text must not be empty: %w", entity.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(text) > maxCommentLength {
		return nil, fmt.Errorf("comment text must be at most %d characters: %w", maxCommentLength, entity.ErrInvalidArgument)
	}

	if _, err := uc.getViewablePost(postID, requesterID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		PostID:   postID,
		AuthorID: requesterID,
		Text:     text,
	}

	if err := uc.contentRepo.CreateComment(comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	uc.publisher.Dispatch(queue.NewPostCommentedEvent(comment.PostID, comment.AuthorID, comment.Text))

	return comment, nil
}

func (uc *contentUseCase) ListComments(postID, requesterID int64, limit, offset int) ([]*entity.Comment, error) {
	if limit <= 0 || offset < 0 {
		return nil, fmt.Errorf("limit must be positive and offset non-negative: %w", entity.ErrInvalidArgument)
	}

	if _, err := uc.getViewablePost(postID, requesterID); err != nil {
		return nil, err
	}

	comments, err := uc.contentRepo.ListComments(postID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list comments for post %d: %v", postID, err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

func (uc *contentUseCase) RegisterUser(input RegisterUserInput) (*entity.User, error) {
	if input.Username == "" || input.Email == "" {
		return nil, fmt.Errorf("username and email are required: %w", entity.ErrInvalidArgument)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("password is required: %w", entity.ErrInvalidArgument)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration: %w", err)
	}

	user := &entity.User{
		Lastname:     input.Lastname,
		Firstname:    input.Firstname,
		Username:     input.Username,
		Age:          input.Age,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hashedPassword),
	}

	if birthday, err := parseBirthday(input.Birthday); err != nil {
		return nil, err
	} else {
		user.Birthday = birthday
	}

	if err := uc.contentRepo.CreateUser(user); err != nil {
		return nil, err
	}

	uc.publisher.Dispatch(queue.NewUserRegisteredEvent(user.UserID, user.CreatedAt))

	return user, nil
}
