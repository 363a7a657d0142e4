package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tours-backend/middleware"
	"tours-backend/services"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *services.SessionService) {
	t.Helper()
	sessions := services.NewSessionService(openTestDB(t))
	ac := NewAuthController(sessions)

	r := gin.New()
	r.POST("/admin/login", ac.Login)
	r.GET("/admin/logout", ac.Logout)
	return r, sessions
}

func postLogin(r *gin.Engine, password string) *httptest.ResponseRecorder {
	form := url.Values{"password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestLoginWithPlainPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	r, sessions := newAuthRouter(t)

	rec := postLogin(r, "hunter2")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Len(t, cookie.Value, 64)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, sessions.Validate(cookie.Value))
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	t.Setenv("ADMIN_PASSWORD", "")
	r, _ := newAuthRouter(t)

	rec := postLogin(r, "correct horse")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	rec = postLogin(r, "wrong pony")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, middleware.LoginPath+"?error=1", rec.Header().Get("Location"))
	assert.Nil(t, sessionCookie(rec))
}

func TestLoginWrongPasswordRedirectsWithError(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	r, _ := newAuthRouter(t)

	rec := postLogin(r, "nope")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, middleware.LoginPath+"?error=1", rec.Header().Get("Location"))
}

func TestLoginImpossibleWithoutConfiguredSecret(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	r, _ := newAuthRouter(t)

	rec := postLogin(r, "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, middleware.LoginPath+"?error=1", rec.Header().Get("Location"))
}

func TestLogoutRevokesSessionAndClearsCookie(t *testing.T) {
	r, sessions := newAuthRouter(t)

	token, err := sessions.Create()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, middleware.LoginPath, rec.Header().Get("Location"))
	assert.False(t, sessions.Validate(token))

	cleared := sessionCookie(rec)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}
