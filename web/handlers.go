package web

import (
	sterrors "errors"
	"net/http"
	"strconv"

	"msgboard/errors"
	"msgboard/projection"

	"github.com/gin-gonic/gin"
)

func (s *Server) registerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

// register creates a new account. Response bodies mirror the board's
// historical plain text answers; storage error details are logged, never
// sent to the caller.
func (s *Server) register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	_, err := s.authService.Register(username, email, password)
	switch {
	case err == nil:
		c.String(http.StatusOK, "User registered successfully")
	case sterrors.Is(err, errors.ErrMissingFields):
		c.String(http.StatusBadRequest, "All fields are required")
	case sterrors.Is(err, errors.ErrEmailInUse):
		c.String(http.StatusBadRequest, "Email already in use")
	default:
		s.log.Error("registration failed", "error", err)
		c.String(http.StatusInternalServerError, "Error registering user")
	}
}

func (s *Server) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// login verifies credentials and plants the session cookie. Any failure
// redirects back to the login page without detail.
func (s *Server) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	session, err := s.authService.Login(username, password)
	if err != nil {
		if !sterrors.Is(err, errors.ErrInvalidCredentials) {
			s.log.Error("login failed", "error", err)
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	s.setSessionCookie(c, session.ID, int(s.sessionTTL.Seconds()))
	c.Redirect(http.StatusFound, "/feed")
}

func (s *Server) logout(c *gin.Context) {
	if sessionID, err := c.Cookie(SessionCookie); err == nil {
		if err := s.authService.Logout(sessionID); err != nil {
			s.log.Error("logout failed", "error", err)
		}
	}
	s.setSessionCookie(c, "", -1)
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) feed(c *gin.Context) {
	threads, err := s.boardService.Feed()
	if err != nil {
		s.log.Error("feed assembly failed", "error", err)
		c.String(http.StatusInternalServerError, "Error loading feed")
		return
	}

	c.HTML(http.StatusOK, "feed.html", gin.H{
		"User":    currentUser(c),
		"Threads": projection.FormatFeed(threads, s.location),
	})
}

func (s *Server) postMessage(c *gin.Context) {
	user := currentUser(c)

	_, err := s.boardService.PostMessage(user.ID, c.PostForm("content"))
	if err != nil {
		s.renderPostError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/feed")
}

func (s *Server) postReply(c *gin.Context) {
	user := currentUser(c)

	parentID, err := strconv.ParseInt(c.PostForm("parent_id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid parent message")
		return
	}

	if _, err := s.boardService.PostReply(user.ID, c.PostForm("content"), parentID); err != nil {
		s.renderPostError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/feed")
}

func (s *Server) renderPostError(c *gin.Context, err error) {
	if sterrors.Is(err, errors.ErrEmptyContent) {
		c.String(http.StatusBadRequest, "Message content is required")
		return
	}
	s.log.Error("posting message failed", "error", err)
	c.String(http.StatusInternalServerError, "Error posting message")
}

func (s *Server) profile(c *gin.Context) {
	c.HTML(http.StatusOK, "profile.html", gin.H{"User": currentUser(c)})
}

func (s *Server) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetCookie(SessionCookie, value, maxAge, "/", "", false, true)
}
