package http

import (
	"net/http"
	"time"

	"pulse-feed/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ProxyHandler forwards REST calls to the content service verbatim: same
// method, path, query and body, response status and body copied back
// unchanged. The only thing it adds is the caller identity resolved from the
// Bearer token, which overrides any user_id query parameter.
type ProxyHandler struct {
	client  *http.Client
	baseURL string
	logger  *logger.Logger
}

func NewProxyHandler(baseURL string, logger *logger.Logger) *ProxyHandler {
	return &ProxyHandler{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		logger:  logger,
	}
}

func (h *ProxyHandler) forward(c *gin.Context, path string) {
	query := c.Request.URL.Query()
	if userID := c.GetString("user_id"); userID != "" {
		query.Set("user_id", userID)
	}

	target := h.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target, c.Request.Body)
	if err != nil {
		h.logger.Error("Failed to build upstream request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if contentType := c.GetHeader("Content-Type"); contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Error("Content service request failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Content service unavailable"})
		return
	}
	defer resp.Body.Close()

	c.DataFromReader(resp.StatusCode, resp.ContentLength, resp.Header.Get("Content-Type"), resp.Body, nil)
}

func (h *ProxyHandler) CreatePost(c *gin.Context) {
	h.forward(c, "/api/v1/posts")
}

func (h *ProxyHandler) GetPost(c *gin.Context) {
	h.forward(c, "/api/v1/posts/"+c.Param("id"))
}

func (h *ProxyHandler) UpdatePost(c *gin.Context) {
	h.forward(c, "/api/v1/posts/"+c.Param("id"))
}

func (h *ProxyHandler) DeletePost(c *gin.Context) {
	h.forward(c, "/api/v1/posts/"+c.Param("id"))
}

func (h *ProxyHandler) ListPosts(c *gin.Context) {
	h.forward(c, "/api/v1/posts")
}

func (h *ProxyHandler) ViewPost(c *gin.Context) {
	h.forward(c, "/api/v1/posts/"+c.Param("id")+"/view")
}

func (h *ProxyHandler) LikePost(c *gin.Context) {
	h.forward(c, "/api/v1/posts/"+c.Param("id")+"/liked")
}

func (h *ProxyHandler) CommentPost(c *gin.Context) {
	h.forward(c, "/api/v1/posts/"+c.Param("id")+"/comment")
}

func (h *ProxyHandler) ListComments(c *gin.Context) {
	h.forward(c, "/api/v1/posts/"+c.Param("id")+"/comment")
}

func (h *ProxyHandler) RegisterUser(c *gin.Context) {
	h.forward(c, "/api/v1/users/register")
}
