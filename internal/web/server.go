package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/martijn/inkwell/internal/core/service"
	"github.com/martijn/inkwell/internal/logger"
	"github.com/martijn/inkwell/internal/web/handler"
	"github.com/martijn/inkwell/internal/web/middleware"
	"github.com/martijn/inkwell/pkg/config"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
	log    *logger.Logger
}

// NewServer creates the web server with all routes registered
func NewServer(
	cfg *config.Config,
	log *logger.Logger,
	authService *service.AuthService,
	postService *service.PostService,
) *Server {
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.Recovery())
	router.Use(middleware.CurrentUser(authService))

	// Templates and static assets
	router.LoadHTMLGlob(cfg.TemplateGlob)
	router.Static("/static", cfg.StaticDir)

	// Initialize handlers
	postHandler := handler.NewPostHandler(postService, log)
	authHandler := handler.NewAuthHandler(authService, log)
	pageHandler := handler.NewPageHandler()

	registerRoutes(router, postHandler, authHandler, pageHandler)

	return &Server{
		router: router,
		config: cfg,
		log:    log,
	}
}

// registerRoutes wires the HTTP surface onto the router.
func registerRoutes(
	router *gin.Engine,
	postHandler *handler.PostHandler,
	authHandler *handler.AuthHandler,
	pageHandler *handler.PageHandler,
) {
	// Public pages
	router.GET("/", postHandler.Index)
	router.GET("/about", pageHandler.About)
	router.GET("/contact", pageHandler.Contact)
	router.GET("/post/:id", postHandler.Show)

	// Account flows
	router.GET("/register", authHandler.RegisterForm)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Post management (login required)
	authed := router.Group("/", middleware.RequireUser())
	{
		authed.GET("/new-post", postHandler.NewForm)
		authed.POST("/new-post", postHandler.Create)
		authed.GET("/edit-post/:id", postHandler.EditForm)
		authed.POST("/edit-post/:id", postHandler.Update)
		authed.GET("/delete/:id", postHandler.Delete)
	}

	router.NoRoute(pageHandler.NotFound)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.HTTPHost, s.config.HTTPPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	s.log.Infow("starting HTTP server", "addr", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
