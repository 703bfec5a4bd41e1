package http

import (
	"errors"
	"net/http"
	"strconv"

	"pulse-feed/pkg/logger"
	"pulse-feed/services/content/internal/entity"
	"pulse-feed/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit  = 20
	defaultListOffset = 0
)

type ContentHandler struct {
	contentUseCase usecase.ContentUseCase
	logger         *logger.Logger
}

func NewContentHandler(contentUseCase usecase.ContentUseCase, logger *logger.Logger) *ContentHandler {
	return &ContentHandler{
		contentUseCase: contentUseCase,
		logger:         logger,
	}
}

// writeError maps the categorical domain errors onto HTTP status codes.
// Anything unclassified is an internal failure and its details stay out of
// the response.
func (h *ContentHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func (h *ContentHandler) postIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post id must be an integer"})
		return 0, false
	}
	return id, true
}

// requesterID resolves the caller identity from the user_id query parameter,
// falling back to the value bound from the request body.
func (h *ContentHandler) requesterID(c *gin.Context, bodyUserID int64) int64 {
	if raw := c.Query("user_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return id
		}
		return 0
	}
	return bodyUserID
}

func (h *ContentHandler) pagination(c *gin.Context) (limit, offset int, ok bool) {
	limit = defaultListLimit
	offset = defaultListOffset

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Limit must be an integer"})
			return 0, 0, false
		}
		limit = n
	}

	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Offset must be an integer"})
			return 0, 0, false
		}
		offset = n
	}

	return limit, offset, true
}

type PostRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	UserID      int64    `json:"user_id"`
	IsPrivate   bool     `json:"is_private"`
	Tags        []string `json:"tags"`
}

func (h *ContentHandler) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.contentUseCase.CreatePost(h.requesterID(c, req.UserID), req.Title, req.Description, req.IsPrivate, req.Tags)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *ContentHandler) GetPost(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	post, err := h.contentUseCase.GetPost(postID, h.requesterID(c, 0))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) UpdatePost(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.contentUseCase.UpdatePost(postID, h.requesterID(c, req.UserID), req.Title, req.Description, req.IsPrivate, req.Tags)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) DeletePost(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	if err := h.contentUseCase.DeletePost(postID, h.requesterID(c, 0)); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "post_id": postID})
}

func (h *ContentHandler) ListPosts(c *gin.Context) {
	limit, offset, ok := h.pagination(c)
	if !ok {
		return
	}

	posts, err := h.contentUseCase.ListPosts(h.requesterID(c, 0), limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

func (h *ContentHandler) ViewPost(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	post, err := h.contentUseCase.ViewPost(postID, h.requesterID(c, 0))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) LikePost(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	like, err := h.contentUseCase.LikePost(postID, h.requesterID(c, 0))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, like)
}

type CommentRequest struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

func (h *ContentHandler) CommentPost(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.contentUseCase.CommentPost(postID, h.requesterID(c, req.UserID), req.Text)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *ContentHandler) ListComments(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	limit, offset, ok := h.pagination(c)
	if !ok {
		return
	}

	comments, err := h.contentUseCase.ListComments(postID, h.requesterID(c, 0), limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}

type RegisterUserRequest struct {
	Lastname  string `json:"lastname"`
	Firstname string `json:"firstname"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Birthday  string `json:"birthday"`
}

func (h *ContentHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.contentUseCase.RegisterUser(usecase.RegisterUserInput{
		Lastname:  req.Lastname,
		Firstname: req.Firstname,
		Username:  req.Username,
		Password:  req.Password,
		Age:       req.Age,
		Email:     req.Email,
		Phone:     req.Phone,
		Birthday:  req.Birthday,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
