package web

import (
	sterrors "errors"
	"net/http"

	"msgboard/domain"
	"msgboard/errors"

	"github.com/gin-gonic/gin"
)

const userKey = "current_user"

// RequireAuthenticated resolves the session cookie back to a full user
// record before the request proceeds. Every failure along the way —
// missing cookie, unknown or expired session, user deleted mid-session —
// degrades to a redirect to the login page, never an error response.
func (s *Server) RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		user, err := s.authService.CurrentUser(sessionID)
		if err != nil {
			if !sterrors.Is(err, errors.ErrSessionNotFound) && !sterrors.Is(err, errors.ErrUserNotFound) {
				s.log.Error("session rehydration failed", "error", err)
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// currentUser returns the user attached by RequireAuthenticated.
func currentUser(c *gin.Context) domain.User {
	return c.MustGet(userKey).(domain.User)
}
