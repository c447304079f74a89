package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the static informational pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// About handles GET /about
func (h *PageHandler) About(c *gin.Context) {
	render(c, http.StatusOK, "about.html", nil)
}

// Contact handles GET /contact
func (h *PageHandler) Contact(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", nil)
}

// NotFound is the fallback for unknown routes.
func (h *PageHandler) NotFound(c *gin.Context) {
	showNotFound(c, "That page does not exist.")
}
