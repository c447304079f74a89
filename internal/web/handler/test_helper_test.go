package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/martijn/inkwell/internal/core/domain"
	"github.com/martijn/inkwell/internal/core/service"
	"github.com/martijn/inkwell/internal/infrastructure/sqlite"
	"github.com/martijn/inkwell/internal/logger"
	"github.com/martijn/inkwell/internal/web/middleware"
)

// testEnv holds all test dependencies
type testEnv struct {
	postDB      *sqlite.DB
	userDB      *sqlite.DB
	router      *gin.Engine
	authService *service.AuthService
	postService *service.PostService
}

// setupTestEnv creates a test environment with in-memory SQLite stores
// and the full route surface, including the auth middleware.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	postDB, err := sqlite.NewPostDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create post database: %v", err)
	}

	userDB, err := sqlite.NewUserDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create user database: %v", err)
	}

	postRepo := sqlite.NewPostRepository(postDB)
	userRepo := sqlite.NewUserRepository(userDB)

	authService := service.NewAuthService(userRepo, "test-secret")
	postService := service.NewPostService(postRepo, userRepo)

	log := logger.Nop()
	postHandler := NewPostHandler(postService, log)
	authHandler := NewAuthHandler(authService, log)
	pageHandler := NewPageHandler()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.LoadHTMLGlob("../../../web/templates/*.html")
	router.Use(middleware.CurrentUser(authService))

	router.GET("/", postHandler.Index)
	router.GET("/about", pageHandler.About)
	router.GET("/contact", pageHandler.Contact)
	router.GET("/post/:id", postHandler.Show)
	router.GET("/register", authHandler.RegisterForm)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	authed := router.Group("/", middleware.RequireUser())
	authed.GET("/new-post", postHandler.NewForm)
	authed.POST("/new-post", postHandler.Create)
	authed.GET("/edit-post/:id", postHandler.EditForm)
	authed.POST("/edit-post/:id", postHandler.Update)
	authed.GET("/delete/:id", postHandler.Delete)

	return &testEnv{
		postDB:      postDB,
		userDB:      userDB,
		router:      router,
		authService: authService,
		postService: postService,
	}
}

// cleanup closes both test stores
func (env *testEnv) cleanup() {
	if env.postDB != nil {
		env.postDB.Close()
	}
	if env.userDB != nil {
		env.userDB.Close()
	}
}

// createUser registers a user directly through the auth service
func (env *testEnv) createUser(t *testing.T, name, email, password string) *domain.User {
	t.Helper()

	user, err := env.authService.Register(context.Background(), name, email, password)
	if err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

// sessionFor returns a signed session token for the user
func (env *testEnv) sessionFor(t *testing.T, user *domain.User) string {
	t.Helper()

	token, err := env.authService.IssueSession(user)
	if err != nil {
		t.Fatalf("failed to issue session: %v", err)
	}
	return token
}

// createPost seeds a post through the post service
func (env *testEnv) createPost(t *testing.T, author *domain.User, title string) *domain.Post {
	t.Helper()

	post, err := env.postService.CreatePost(context.Background(), author.ID, title, "a subtitle", "some text", "http://example.com/cover.png")
	if err != nil {
		t.Fatalf("failed to create post: %v", err)
	}
	return post
}

// get performs a GET request, optionally with a session cookie
func (env *testEnv) get(t *testing.T, path, session string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: session})
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// postForm performs a form POST, optionally with a session cookie
func (env *testEnv) postForm(t *testing.T, path string, values url.Values, session string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: session})
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// sessionCookie digs the session cookie out of a response, if any
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

// wantRedirect asserts a 302 to the given location
func wantRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()

	if w.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d\nBody: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %s, got %s", location, got)
	}
}
