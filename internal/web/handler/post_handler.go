package handler

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/martijn/inkwell/internal/core/repository"
	"github.com/martijn/inkwell/internal/core/service"
	"github.com/martijn/inkwell/internal/logger"
	"github.com/martijn/inkwell/internal/web/form"
	"github.com/martijn/inkwell/internal/web/middleware"
)

type PostHandler struct {
	postService *service.PostService
	log         *logger.Logger
}

func NewPostHandler(postService *service.PostService, log *logger.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		log:         log,
	}
}

// Index handles GET /
func (h *PostHandler) Index(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to list posts", "error", err)
		showServerError(c)
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"Posts": posts,
	})
}

// Show handles GET /post/:id
func (h *PostHandler) Show(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		showNotFound(c, "That post does not exist.")
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		showNotFound(c, "That post does not exist.")
		return
	}
	if err != nil {
		h.log.Errorw("failed to load post", "id", id, "error", err)
		showServerError(c)
		return
	}

	render(c, http.StatusOK, "post.html", gin.H{
		"Post": post,
		// The body comes from the rich-text editor and is stored as HTML
		"Body": template.HTML(post.Body),
	})
}

// NewForm handles GET /new-post
func (h *PostHandler) NewForm(c *gin.Context) {
	render(c, http.StatusOK, "make-post.html", gin.H{
		"Heading": "New Post",
		"Form":    form.PostForm{},
		"Errors":  form.Errors{},
	})
}

// Create handles POST /new-post
func (h *PostHandler) Create(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		showServerError(c)
		return
	}
	f := form.PostFormFromValues(c.Request.PostForm)
	if errs := f.Validate(); errs != nil {
		// Re-display the form with inline errors and the typed values
		render(c, http.StatusOK, "make-post.html", gin.H{
			"Heading": "New Post",
			"Form":    f,
			"Errors":  errs,
		})
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), user.ID, f.Title, f.Subtitle, f.Body, f.ImgURL)
	if err != nil {
		h.log.Errorw("failed to create post", "author_id", user.ID, "error", err)
		showServerError(c)
		return
	}

	h.log.Infow("post created", "id", post.ID, "author", post.AuthorName)
	c.Redirect(http.StatusFound, "/")
}

// EditForm handles GET /edit-post/:id
func (h *PostHandler) EditForm(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		showNotFound(c, "That post does not exist.")
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		showNotFound(c, "That post does not exist.")
		return
	}
	if err != nil {
		h.log.Errorw("failed to load post", "id", id, "error", err)
		showServerError(c)
		return
	}

	render(c, http.StatusOK, "make-post.html", gin.H{
		"Heading": "Edit Post",
		"PostID":  post.ID,
		"Form": form.PostForm{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			Body:     post.Body,
			ImgURL:   post.ImgURL,
		},
		"Errors": form.Errors{},
	})
}

// Update handles POST /edit-post/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		showNotFound(c, "That post does not exist.")
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		showServerError(c)
		return
	}
	f := form.PostFormFromValues(c.Request.PostForm)
	if errs := f.Validate(); errs != nil {
		render(c, http.StatusOK, "make-post.html", gin.H{
			"Heading": "Edit Post",
			"PostID":  id,
			"Form":    f,
			"Errors":  errs,
		})
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), id, f.Title, f.Subtitle, f.Body, f.ImgURL)
	if errors.Is(err, repository.ErrNotFound) {
		showNotFound(c, "That post does not exist.")
		return
	}
	if err != nil {
		h.log.Errorw("failed to update post", "id", id, "error", err)
		showServerError(c)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}

// Delete handles GET /delete/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		showNotFound(c, "That post does not exist.")
		return
	}

	err = h.postService.DeletePost(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		showNotFound(c, "That post does not exist.")
		return
	}
	if err != nil {
		h.log.Errorw("failed to delete post", "id", id, "error", err)
		showServerError(c)
		return
	}

	h.log.Infow("post deleted", "id", id)
	c.Redirect(http.StatusFound, "/")
}
