package middleware

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/conexao/internal/app/auth"
	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/services"
)

// AuthMiddleware resolves the session cookie into the acting user
type AuthMiddleware struct {
	authService   *services.AuthService
	notifications services.NotificationService
	cookieName    string
	secure        bool
	logger        zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(
	authService *services.AuthService,
	notifications services.NotificationService,
	cookieName string,
	secure bool,
	logger zerolog.Logger,
) *AuthMiddleware {
	return &AuthMiddleware{
		authService:   authService,
		notifications: notifications,
		cookieName:    cookieName,
		secure:        secure,
		logger:        logger,
	}
}

// Session loads the user behind the session cookie, if any. Anonymous
// requests pass through untouched; a stale cookie is cleared.
func (m *AuthMiddleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, err := m.authService.CurrentUser(c.Request.Context(), token)
		if err != nil {
			m.logger.Debug().Err(err).Msg("Discarding session cookie")
			m.ClearSession(c)
			c.Next()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUnreadKey, m.notifications.UnreadCount(c.Request.Context(), user.ID))
		c.Next()
	}
}

// LoginRequired redirects anonymous visitors to the login page
func (m *AuthMiddleware) LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) != nil {
			c.Next()
			return
		}

		next := c.Request.URL.Path
		if c.Request.Method != http.MethodGet {
			next = c.GetHeader("Referer")
			if u, err := url.Parse(next); err == nil {
				next = u.Path
			}
		}
		target := "/login"
		if next != "" && next != "/" && next != "/login" {
			target += "?next=" + url.QueryEscape(next)
		}
		c.Redirect(http.StatusSeeOther, target)
		c.Abort()
	}
}

// AdminRequired renders 403 for members without the admin role
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			m.logger.Warn().Str("userID", user.ID).Str("path", c.Request.URL.Path).Msg("Admin area denied")
			HandlePageError(c, auth.ErrNotAdmin)
			c.Abort()
			return
		}
		c.Next()
	}
}

// StartSession writes the session cookie
func (m *AuthMiddleware) StartSession(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, token, int(ttl.Seconds()), "/", "", m.secure, true)
}

// ClearSession removes the session cookie
func (m *AuthMiddleware) ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}

// CurrentUser returns the acting user, or nil for anonymous requests
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
