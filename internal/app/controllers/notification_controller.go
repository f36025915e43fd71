package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/conexao/internal/app/services"
	"github.com/yigit/conexao/internal/middleware"
	"github.com/yigit/conexao/internal/views"
)

// NotificationController handles the notification inbox
type NotificationController struct {
	notificationService services.NotificationService
	logger              zerolog.Logger
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService, logger zerolog.Logger) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		logger:              logger,
	}
}

// List renders the acting user's notifications, newest first
// GET /notifications
func (c *NotificationController) List(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	items, err := c.notificationService.ListNotifications(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	middleware.RenderPage(ctx, http.StatusOK, "notifications", &views.Page{
		Title: "Notificações",
		Data:  items,
	})
}

// MarkRead marks one notification as read and follows its link
// POST /notifications/:id/read
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	n, err := c.notificationService.MarkRead(ctx.Request.Context(), ctx.Param("id"), user.ID)
	if err != nil {
		middleware.FailAndRedirect(ctx, err, "/notifications")
		return
	}

	target := "/notifications"
	if n.Link != "" {
		target = safeRedirect(n.Link)
	}
	ctx.Redirect(http.StatusSeeOther, target)
}

// MarkAllRead clears the unread badge
// POST /notifications/read-all
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	changed, err := c.notificationService.MarkAllRead(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.FailAndRedirect(ctx, err, "/notifications")
		return
	}
	c.logger.Debug().Str("userID", user.ID).Int("changed", changed).Msg("Notifications marked as read")
	middleware.SucceedAndRedirect(ctx, "Todas as notificações foram marcadas como lidas.", "/notifications")
}
