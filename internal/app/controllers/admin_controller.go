package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/app/services"
	"github.com/yigit/conexao/internal/middleware"
	"github.com/yigit/conexao/internal/pkg/apperrors"
	"github.com/yigit/conexao/internal/pkg/helpers"
	"github.com/yigit/conexao/internal/views"
)

// AdminController handles the moderation pages. Every route sits behind
// AdminRequired; the services check the role again.
type AdminController struct {
	adminService     services.AdminService
	userService      services.UserService
	favorService     services.FavorService
	communityService services.CommunityService
	reportService    services.ReportService
	missionService   services.MissionService
	pageSize         int
	logger           zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(
	adminService services.AdminService,
	userService services.UserService,
	favorService services.FavorService,
	communityService services.CommunityService,
	reportService services.ReportService,
	missionService services.MissionService,
	pageSize int,
	logger zerolog.Logger,
) *AdminController {
	return &AdminController{
		adminService:     adminService,
		userService:      userService,
		favorService:     favorService,
		communityService: communityService,
		reportService:    reportService,
		missionService:   missionService,
		pageSize:         pageSize,
		logger:           logger,
	}
}

// Dashboard renders the platform counters
// GET /admin
func (c *AdminController) Dashboard(ctx *gin.Context) {
	stats, err := c.adminService.GetStats(ctx.Request.Context(), middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	middleware.RenderPage(ctx, http.StatusOK, "admin_dashboard", &views.Page{Title: "Administração", Data: stats})
}

// Users lists accounts matching the search box
// GET /admin/users
func (c *AdminController) Users(ctx *gin.Context) {
	var filter dto.UserFilterRequest
	middleware.BindQuery(ctx, &filter)

	middleware.RenderPage(ctx, http.StatusOK, "admin_users", &views.Page{
		Title: "Usuários",
		Data: &dto.AdminUsersView{
			Users:  c.userService.GetUsersByFilter(ctx.Request.Context(), &filter),
			Filter: filter,
		},
	})
}

// Favors lists every favor with a status filter
// GET /admin/favors
func (c *AdminController) Favors(ctx *gin.Context) {
	var filter dto.FavorFilterRequest
	if verrs := middleware.BindQuery(ctx, &filter); verrs.HasErrors() {
		filter = dto.FavorFilterRequest{Q: filter.Q}
	}
	page, size := helpers.ParsePaginationParams(ctx, c.pageSize)

	list, err := c.favorService.ListFavors(ctx.Request.Context(), &filter, page, size, middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	list.Query = ctx.Request.URL.Query()
	middleware.RenderPage(ctx, http.StatusOK, "admin_favors", &views.Page{Title: "Favores", Data: list})
}

// CancelFavor force-cancels a favor that is not finished yet
// POST /admin/favors/:id/cancel
func (c *AdminController) CancelFavor(ctx *gin.Context) {
	if _, err := c.favorService.AdminCancelFavor(ctx.Request.Context(), ctx.Param("id"), middleware.CurrentUser(ctx)); err != nil {
		middleware.FailAndRedirect(ctx, err, "/admin/favors")
		return
	}
	middleware.SucceedAndRedirect(ctx, "Favor cancelado pela moderação.", "/admin/favors")
}

// Communities lists every community
// GET /admin/communities
func (c *AdminController) Communities(ctx *gin.Context) {
	var filter dto.CommunityFilterRequest
	if verrs := middleware.BindQuery(ctx, &filter); verrs.HasErrors() {
		filter = dto.CommunityFilterRequest{Q: filter.Q}
	}
	page, size := helpers.ParsePaginationParams(ctx, c.pageSize)

	list, err := c.communityService.GetAllCommunities(ctx.Request.Context(), &filter, page, size, "")
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	list.Query = ctx.Request.URL.Query()
	middleware.RenderPage(ctx, http.StatusOK, "admin_communities", &views.Page{Title: "Comunidades", Data: list})
}

// Reports renders the moderation queue
// GET /admin/reports
func (c *AdminController) Reports(ctx *gin.Context) {
	status := ctx.Query("status")
	switch models.ReportStatus(status) {
	case models.ReportStatusPending, models.ReportStatusResolved, models.ReportStatusIgnored:
	default:
		status = ""
	}

	middleware.RenderPage(ctx, http.StatusOK, "admin_reports", &views.Page{
		Title: "Denúncias",
		Data: &dto.AdminReportsView{
			Reports: c.reportService.ListReports(ctx.Request.Context(), models.ReportStatus(status)),
			Status:  status,
		},
	})
}

// ResolveReport closes a report as handled
// POST /admin/reports/:id/resolve
func (c *AdminController) ResolveReport(ctx *gin.Context) {
	c.reviewReport(ctx, models.ReportStatusResolved, "Denúncia marcada como resolvida.")
}

// IgnoreReport closes a report without action
// POST /admin/reports/:id/ignore
func (c *AdminController) IgnoreReport(ctx *gin.Context) {
	c.reviewReport(ctx, models.ReportStatusIgnored, "Denúncia ignorada.")
}

func (c *AdminController) reviewReport(ctx *gin.Context, status models.ReportStatus, msg string) {
	if _, err := c.reportService.ReviewReport(ctx.Request.Context(), ctx.Param("id"), middleware.CurrentUser(ctx), status); err != nil {
		middleware.FailAndRedirect(ctx, err, "/admin/reports")
		return
	}
	middleware.SucceedAndRedirect(ctx, msg, "/admin/reports")
}

// Missions renders missions with goal toggles
// GET /admin/missions
func (c *AdminController) Missions(ctx *gin.Context) {
	middleware.RenderPage(ctx, http.StatusOK, "admin_missions", &views.Page{
		Title: "Missões",
		Data:  c.missionService.GetMissionsByNiche(ctx.Request.Context()),
	})
}

// ToggleGoal flips one mission goal between done and pending
// POST /admin/missions/:id/goals/:goal/toggle
func (c *AdminController) ToggleGoal(ctx *gin.Context) {
	goal, err := strconv.Atoi(ctx.Param("goal"))
	if err != nil {
		middleware.FailAndRedirect(ctx, apperrors.NewBadRequestError("invalid goal index: "+ctx.Param("goal")), "/admin/missions")
		return
	}
	if _, err := c.missionService.ToggleGoal(ctx.Request.Context(), ctx.Param("id"), goal, middleware.CurrentUser(ctx)); err != nil {
		middleware.FailAndRedirect(ctx, err, "/admin/missions")
		return
	}
	middleware.SucceedAndRedirect(ctx, "Meta atualizada.", "/admin/missions")
}

// Reset restores the demo fixtures
// POST /admin/reset
func (c *AdminController) Reset(ctx *gin.Context) {
	if err := c.adminService.ResetFixtures(ctx.Request.Context(), middleware.CurrentUser(ctx)); err != nil {
		middleware.FailAndRedirect(ctx, err, "/admin")
		return
	}
	c.logger.Warn().Str("adminID", middleware.CurrentUser(ctx).ID).Msg("Demo data restored")
	middleware.SucceedAndRedirect(ctx, "Dados de demonstração restaurados.", "/admin")
}
