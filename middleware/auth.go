package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tours-backend/services"
)

// SessionCookie is the single client-side credential for the admin surface.
const SessionCookie = "session"

// LoginPath is the one admin path the gate leaves open.
const LoginPath = "/admin/login"

// RequireSession gates the admin namespace: a request without a valid
// session cookie is redirected to the login entry point before it can reach
// any store or pipeline operation.
func RequireSession(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || !sessions.Validate(token) {
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
