package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Gin context keys set by the middlewares of this package.
const (
	ContextUserKey   = "currentUser"
	ContextUserIDKey = "userID"
	ContextUnreadKey = "unreadCount"
	ContextThemeKey  = "theme"
)

// ThemeCookie stores the light/dark preference.
const ThemeCookie = "conexao_theme"

// Themes accepted by the layout.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// RequestLogger logs one line per request after it completes.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("Request handled")
	}
}

// Theme resolves the theme cookie, falling back to defaultTheme.
func Theme(defaultTheme string) gin.HandlerFunc {
	return func(c *gin.Context) {
		theme := defaultTheme
		if v, err := c.Cookie(ThemeCookie); err == nil && IsTheme(v) {
			theme = v
		}
		c.Set(ContextThemeKey, theme)
		c.Next()
	}
}

// IsTheme reports whether v names a supported theme.
func IsTheme(v string) bool {
	return v == ThemeLight || v == ThemeDark
}

// CurrentTheme returns the theme resolved by Theme.
func CurrentTheme(c *gin.Context) string {
	if theme := c.GetString(ContextThemeKey); theme != "" {
		return theme
	}
	return ThemeLight
}
