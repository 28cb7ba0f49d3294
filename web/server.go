// Package web exposes the board over HTTP: form-driven registration and
// login, a session cookie, and server-side rendered pages.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"msgboard/services"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// SessionCookie is the name of the cookie carrying the opaque session id.
const SessionCookie = "board_session"

type Server struct {
	engine       *gin.Engine
	log          *slog.Logger
	authService  services.IAuthService
	boardService services.IBoardService
	location     *time.Location
	sessionTTL   time.Duration
}

func NewServer(
	log *slog.Logger,
	authService services.IAuthService,
	boardService services.IBoardService,
	location *time.Location,
	sessionTTL time.Duration,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(log))
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	s := &Server{
		engine:       engine,
		log:          log,
		authService:  authService,
		boardService: boardService,
		location:     location,
		sessionTTL:   sessionTTL,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	r := s.engine

	// Public routes
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/login") })
	r.GET("/login", s.loginPage)
	r.POST("/login", s.login)
	r.GET("/register", s.registerPage)
	r.POST("/register", s.register)
	r.GET("/logout", s.logout)

	// Gated routes: nothing below reaches the message store or the
	// feed assembler without a resolved user.
	gated := r.Group("/", s.RequireAuthenticated())
	{
		gated.GET("/feed", s.feed)
		gated.GET("/dashboard", func(c *gin.Context) { c.Redirect(http.StatusFound, "/feed") })
		gated.POST("/messages", s.postMessage)
		gated.POST("/reply", s.postReply)
		gated.GET("/profile", s.profile)
	}
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.engine
}
