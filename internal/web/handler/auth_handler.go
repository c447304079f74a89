package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/inkwell/internal/core/service"
	"github.com/martijn/inkwell/internal/logger"
	"github.com/martijn/inkwell/internal/web/form"
	"github.com/martijn/inkwell/internal/web/middleware"
)

type AuthHandler struct {
	authService *service.AuthService
	log         *logger.Logger
}

func NewAuthHandler(authService *service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

// RegisterForm handles GET /register
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{
		"Form":   form.RegisterForm{},
		"Errors": form.Errors{},
	})
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		showServerError(c)
		return
	}
	f := form.RegisterFormFromValues(c.Request.PostForm)
	if errs := f.Validate(); errs != nil {
		render(c, http.StatusOK, "register.html", gin.H{
			"Form":   f,
			"Errors": errs,
		})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), f.Name, f.Email, f.Password)
	if errors.Is(err, service.ErrEmailTaken) {
		render(c, http.StatusOK, "register.html", gin.H{
			"Form":   f,
			"Errors": form.Errors{"Email": "That email is already registered. Log in instead."},
		})
		return
	}
	if err != nil {
		h.log.Errorw("failed to register user", "email", f.Email, "error", err)
		showServerError(c)
		return
	}

	// Registration logs the new user straight in
	token, err := h.authService.IssueSession(user)
	if err != nil {
		h.log.Errorw("failed to issue session", "user_id", user.ID, "error", err)
		showServerError(c)
		return
	}
	middleware.SetSessionCookie(c, token)

	h.log.Infow("user registered", "id", user.ID, "email", user.Email)
	c.Redirect(http.StatusFound, "/")
}

// LoginForm handles GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{
		"Form":   form.LoginForm{},
		"Errors": form.Errors{},
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		showServerError(c)
		return
	}
	f := form.LoginFormFromValues(c.Request.PostForm)
	if errs := f.Validate(); errs != nil {
		render(c, http.StatusOK, "login.html", gin.H{
			"Form":   f,
			"Errors": errs,
		})
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), f.Email, f.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		// One generic message; never reveal whether the email exists
		render(c, http.StatusOK, "login.html", gin.H{
			"Form":   f,
			"Errors": form.Errors{},
			"Error":  "Invalid email or password.",
		})
		return
	}
	if err != nil {
		h.log.Errorw("failed to authenticate", "email", f.Email, "error", err)
		showServerError(c)
		return
	}

	token, err := h.authService.IssueSession(user)
	if err != nil {
		h.log.Errorw("failed to issue session", "user_id", user.ID, "error", err)
		showServerError(c)
		return
	}
	middleware.SetSessionCookie(c, token)

	h.log.Infow("user logged in", "id", user.ID)
	c.Redirect(http.StatusFound, "/")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
