// Package rest exposes the user and post services over HTTP/JSON.
package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/William0209/backend-last/internal/httpserver"
	"github.com/William0209/backend-last/internal/logging"
	"github.com/William0209/backend-last/internal/server/models"
	"github.com/julienschmidt/httprouter"
)

// UserService is the account side of the API.
type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// PostService is the ownership-scoped post side of the API.
type PostService interface {
	Create(ctx context.Context, userID, title, content string) (*models.Post, error)
	List(ctx context.Context, userID string) ([]*models.Post, error)
	Update(ctx context.Context, userID, postID, title, content string) (*models.Post, error)
	Delete(ctx context.Context, userID, postID string) error
}

// TokenVerifier resolves a session token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	address         string
	shutdownTimeout time.Duration
	logger          logging.Logger
	users           UserService
	posts           PostService
	tokens          TokenVerifier
	health          Pinger
}

func NewServer(address string, shutdownTimeout time.Duration, l logging.Logger, us UserService, ps PostService, tokens TokenVerifier, health Pinger) *Server {
	return &Server{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		logger:          l.With("module", "http_server"),
		users:           us,
		posts:           ps,
		tokens:          tokens,
		health:          health,
	}
}

// Handler returns the routed API wrapped in access logging.
func (s *Server) Handler() http.Handler {
	router := httprouter.New()

	router.POST("/register", s.register)
	router.POST("/login", s.login)

	router.POST("/posts", s.protect(s.createPost))
	router.GET("/posts", s.protect(s.listPosts))
	router.PUT("/posts/:id", s.protect(s.updatePost))
	router.DELETE("/posts/:id", s.protect(s.deletePost))

	router.GET("/healthz", s.healthz)

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
	})
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
	})
	router.PanicHandler = s.recovered

	return s.accessLog(router)
}

// Run serves the API on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return httpserver.Serve(ctx, s.logger, s.address, s.Handler(), s.shutdownTimeout)
}
