package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/inkwell/internal/web/middleware"
)

// render fills a template, always exposing the session user as "User" so
// every page can switch its navigation between signed-in and anonymous.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if user, ok := middleware.GetCurrentUser(c); ok {
		data["User"] = user
	}
	c.HTML(status, name, data)
}

// showNotFound renders the error page for a missing record.
func showNotFound(c *gin.Context, message string) {
	render(c, http.StatusNotFound, "error.html", gin.H{
		"Title":   "Not Found",
		"Message": message,
	})
}

// showServerError renders the error page for a persistence fault.
func showServerError(c *gin.Context) {
	render(c, http.StatusInternalServerError, "error.html", gin.H{
		"Title":   "Something went wrong",
		"Message": "An unexpected error occurred. Please try again later.",
	})
}
