package controllers

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"tours-backend/middleware"
	"tours-backend/services"
	"tours-backend/utils"
)

type AuthController struct {
	Sessions *services.SessionService
}

func NewAuthController(sessions *services.SessionService) *AuthController {
	return &AuthController{Sessions: sessions}
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// verifyAdminPassword checks the submitted password against
// ADMIN_PASSWORD_HASH (bcrypt) or, failing that, ADMIN_PASSWORD. With
// neither set, login is impossible.
func verifyAdminPassword(password string) bool {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" && isBcryptHash(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	stored := os.Getenv("ADMIN_PASSWORD")
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// Login is the one ungated admin entry point. Success mints a session,
// sets the cookie, and redirects into the admin surface.
func (ac *AuthController) Login(c *gin.Context) {
	password := c.PostForm("password")
	if password == "" || !verifyAdminPassword(password) {
		c.Redirect(http.StatusSeeOther, middleware.LoginPath+"?error=1")
		return
	}

	// Opportunistic cleanup; expired rows are dead weight either way.
	if err := ac.Sessions.SweepExpired(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clean up sessions")
		return
	}

	token, err := ac.Sessions.Create()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create session")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int((7*24*time.Hour).Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// Logout revokes the presented session, clears the cookie, and sends the
// operator back to the login page. Revoking is idempotent.
func (ac *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		_ = ac.Sessions.Revoke(token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}
