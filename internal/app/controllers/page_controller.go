package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/app/repositories"
	"github.com/yigit/conexao/internal/app/services"
	"github.com/yigit/conexao/internal/middleware"
	"github.com/yigit/conexao/internal/views"
)

// PageController serves the dashboard and the small standalone pages
type PageController struct {
	userService services.UserService
	repos       *repositories.Repositories
	stylesheet  []byte
	logger      zerolog.Logger
}

// NewPageController creates a new PageController
func NewPageController(userService services.UserService, repos *repositories.Repositories, stylesheet []byte, logger zerolog.Logger) *PageController {
	return &PageController{
		userService: userService,
		repos:       repos,
		stylesheet:  stylesheet,
		logger:      logger,
	}
}

// Dashboard renders the signed-in home page
// GET /
func (c *PageController) Dashboard(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	view, err := c.userService.GetDashboard(ctx.Request.Context(), user)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	middleware.RenderPage(ctx, http.StatusOK, "dashboard", &views.Page{Title: "Início", Data: view})
}

// Chat renders the "coming soon" placeholder
// GET /chat
func (c *PageController) Chat(ctx *gin.Context) {
	middleware.RenderPage(ctx, http.StatusOK, "chat", &views.Page{Title: "Chat"})
}

// ToggleTheme flips the light/dark preference cookie
// POST /theme
func (c *PageController) ToggleTheme(ctx *gin.Context) {
	next := middleware.ThemeDark
	if middleware.CurrentTheme(ctx) == middleware.ThemeDark {
		next = middleware.ThemeLight
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.ThemeCookie, next, int((365 * 24 * time.Hour).Seconds()), "/", "", false, true)
	ctx.Redirect(http.StatusSeeOther, safeRedirect(ctx.PostForm("redirect")))
}

// Stylesheet serves the stylesheet prepared at startup
// GET /static/app.css
func (c *PageController) Stylesheet(ctx *gin.Context) {
	ctx.Header("Cache-Control", "public, max-age=3600")
	ctx.Data(http.StatusOK, views.TextCSS+"; charset=utf-8", c.stylesheet)
}

// Health reports liveness and the size of the in-memory data set
// GET /health
func (c *PageController) Health(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Users:     c.repos.UserRepository.Count(reqCtx),
		Favors:    c.repos.FavorRepository.Count(reqCtx, nil),
		Timestamp: time.Now().UTC(),
	})
}
