package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/discostamp/discostamp/api"
	"github.com/discostamp/discostamp/blog/application"
	"github.com/discostamp/discostamp/blog/domain"
)

type PostsHandler struct {
	service *application.PostService
	baseURL string
}

func NewPostsHandler(service *application.PostService, baseURL string) *PostsHandler {
	return &PostsHandler{
		service: service,
		baseURL: baseURL,
	}
}

func (h *PostsHandler) RegisterRoutes(router *gin.Engine) {
	posts := router.Group("/posts")
	{
		posts.GET("", h.ListPosts)
		posts.POST("", h.CreatePost)
		posts.GET("/:slug", h.GetPost)
		posts.PUT("/:slug", h.UpdatePost)
	}
}

// ListPosts returns published posts most-recent-first; drafts are
// included only with includeDrafts=1.
func (h *PostsHandler) ListPosts(c *gin.Context) {
	includeDrafts := c.Query("includeDrafts") == "1"

	posts, err := h.service.ListPosts(c.Request.Context(), includeDrafts)
	if err != nil {
		log.Error().Err(err).Msg("failed to list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list posts"})
		return
	}

	c.JSON(http.StatusOK, api.PostsResponse{Posts: posts})
}

func (h *PostsHandler) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	post, html, err := h.service.GetPost(c.Request.Context(), slug)
	if err != nil {
		h.handlePostError(c, err, "unable to get post")
		return
	}

	c.JSON(http.StatusOK, api.PostResponse{Post: post, HTML: html})
}

func (h *PostsHandler) CreatePost(c *gin.Context) {
	req := &api.CreatePostRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), domain.NewPost{
		Title:   req.Title,
		Summary: req.Summary,
		Content: req.Content,
		Status:  domain.Status(req.Status),
		Slug:    req.Slug,
	})
	if err != nil {
		h.handlePostError(c, err, "unable to create post")
		return
	}

	c.Header("Location", requestBaseURL(c, h.baseURL)+"/posts/"+post.Slug)
	c.JSON(http.StatusCreated, api.PostResponse{Post: post})
}

func (h *PostsHandler) UpdatePost(c *gin.Context) {
	slug := c.Param("slug")

	req := &api.UpdatePostRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var status *domain.Status
	if req.Status != nil {
		s := domain.Status(*req.Status)
		status = &s
	}

	post, err := h.service.UpdatePost(c.Request.Context(), slug, domain.PostChanges{
		Title:   req.Title,
		Summary: req.Summary,
		Content: req.Content,
		Status:  status,
	})
	if err != nil {
		h.handlePostError(c, err, "unable to update post")
		return
	}

	c.JSON(http.StatusOK, api.PostResponse{Post: post})
}

// handlePostError maps the error taxonomy onto status codes: validation
// failures are 400, unknown slugs 404, anything else is a storage
// failure reported as a generic 500.
func (h *PostsHandler) handlePostError(c *gin.Context, err error, fallback string) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, domain.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("post operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
