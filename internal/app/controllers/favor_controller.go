package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/app/services"
	"github.com/yigit/conexao/internal/middleware"
	"github.com/yigit/conexao/internal/pkg/helpers"
	"github.com/yigit/conexao/internal/views"
)

// FavorController handles favor pages and lifecycle actions
type FavorController struct {
	favorService     services.FavorService
	communityService services.CommunityService
	reportService    services.ReportService
	pageSize         int
	logger           zerolog.Logger
}

// NewFavorController creates a new FavorController
func NewFavorController(
	favorService services.FavorService,
	communityService services.CommunityService,
	reportService services.ReportService,
	pageSize int,
	logger zerolog.Logger,
) *FavorController {
	return &FavorController{
		favorService:     favorService,
		communityService: communityService,
		reportService:    reportService,
		pageSize:         pageSize,
		logger:           logger,
	}
}

// List renders the filtered favor list
// GET /favors
func (c *FavorController) List(ctx *gin.Context) {
	var filter dto.FavorFilterRequest
	verrs := middleware.BindQuery(ctx, &filter)
	if verrs.HasErrors() {
		filter = dto.FavorFilterRequest{Q: filter.Q}
	}
	page, size := helpers.ParsePaginationParams(ctx, c.pageSize)

	list, err := c.favorService.ListFavors(ctx.Request.Context(), &filter, page, size, middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	list.Query = ctx.Request.URL.Query()

	middleware.RenderPage(ctx, http.StatusOK, "favors_list", &views.Page{
		Title:  "Favores",
		Errors: verrs,
		Data:   list,
	})
}

// Show renders one favor with the actions open to the viewer
// GET /favors/:id
func (c *FavorController) Show(ctx *gin.Context) {
	view, err := c.favorService.GetFavor(ctx.Request.Context(), ctx.Param("id"), middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	middleware.RenderPage(ctx, http.StatusOK, "favors_detail", &views.Page{
		Title: view.Favor.Title,
		Data:  view,
	})
}

// New renders the favor form
// GET /favors/new
func (c *FavorController) New(ctx *gin.Context) {
	form := &dto.CreateFavorRequest{
		Urgency:       string(models.UrgencyMedium),
		Type:          string(models.FavorTypeVolunteer),
		Participation: string(models.ParticipationIndividual),
		CommunityID:   ctx.Query("community"),
	}
	c.renderForm(ctx, http.StatusOK, form, nil)
}

func (c *FavorController) renderForm(ctx *gin.Context, status int, form *dto.CreateFavorRequest, verrs *dto.ValidationErrors) {
	user := middleware.CurrentUser(ctx)
	middleware.RenderPage(ctx, status, "favors_new", &views.Page{
		Title:  "Pedir um favor",
		Form:   form,
		Errors: verrs,
		Data:   c.communityService.GetUserCommunities(ctx.Request.Context(), user.ID),
	})
}

// Create publishes a favor
// POST /favors
func (c *FavorController) Create(ctx *gin.Context) {
	var req dto.CreateFavorRequest
	if verrs := middleware.BindForm(ctx, &req); verrs.HasErrors() {
		c.renderForm(ctx, http.StatusUnprocessableEntity, &req, verrs)
		return
	}

	favor, err := c.favorService.CreateFavor(ctx.Request.Context(), &req, middleware.CurrentUser(ctx))
	if err != nil {
		c.logger.Debug().Err(err).Msg("Favor form rejected")
		verrs := dto.NewValidationErrors().AddError("form", middleware.ErrorMessage(err))
		c.renderForm(ctx, http.StatusUnprocessableEntity, &req, verrs)
		return
	}

	middleware.SucceedAndRedirect(ctx, "Favor publicado!", "/favors/"+favor.ID)
}

// Accept assigns the acting user as executor
// POST /favors/:id/accept
func (c *FavorController) Accept(ctx *gin.Context) {
	target := "/favors/" + ctx.Param("id")
	favor, err := c.favorService.AcceptFavor(ctx.Request.Context(), ctx.Param("id"), middleware.CurrentUser(ctx))
	if err != nil {
		middleware.FailAndRedirect(ctx, err, target)
		return
	}

	msg := "Favor aceito! Combine os detalhes com quem pediu."
	if favor.IsCollective() && favor.Status == models.FavorStatusOpen {
		msg = "Você entrou no favor coletivo. Aguardando mais participantes."
	}
	middleware.SucceedAndRedirect(ctx, msg, target)
}

// Complete marks the favor as done
// POST /favors/:id/complete
func (c *FavorController) Complete(ctx *gin.Context) {
	target := "/favors/" + ctx.Param("id")
	if _, err := c.favorService.CompleteFavor(ctx.Request.Context(), ctx.Param("id"), middleware.CurrentUser(ctx)); err != nil {
		middleware.FailAndRedirect(ctx, err, target)
		return
	}
	middleware.SucceedAndRedirect(ctx, "Favor concluído! Não esqueça de avaliar.", target)
}

// Cancel cancels the favor
// POST /favors/:id/cancel
func (c *FavorController) Cancel(ctx *gin.Context) {
	target := "/favors/" + ctx.Param("id")
	if _, err := c.favorService.CancelFavor(ctx.Request.Context(), ctx.Param("id"), middleware.CurrentUser(ctx)); err != nil {
		middleware.FailAndRedirect(ctx, err, target)
		return
	}
	middleware.SucceedAndRedirect(ctx, "Favor cancelado.", target)
}

// Rate records the acting user's rating
// POST /favors/:id/rate
func (c *FavorController) Rate(ctx *gin.Context) {
	target := "/favors/" + ctx.Param("id")

	var req dto.RateFavorRequest
	if verrs := middleware.BindForm(ctx, &req); verrs.HasErrors() {
		flashValidation(ctx, verrs, target)
		return
	}

	if _, err := c.favorService.RateFavor(ctx.Request.Context(), ctx.Param("id"), middleware.CurrentUser(ctx), &req); err != nil {
		middleware.FailAndRedirect(ctx, err, target)
		return
	}
	middleware.SucceedAndRedirect(ctx, "Avaliação enviada. Obrigado!", target)
}

// Report flags the favor for moderation
// POST /favors/:id/report
func (c *FavorController) Report(ctx *gin.Context) {
	submitReport(ctx, c.reportService, models.ReportTargetFavor, ctx.Param("id"), "/favors/"+ctx.Param("id"))
}

// submitReport is shared by the favor and profile report forms.
func submitReport(ctx *gin.Context, reportService services.ReportService, target models.ReportTarget, targetID, redirect string) {
	var req dto.CreateReportRequest
	if verrs := middleware.BindForm(ctx, &req); verrs.HasErrors() {
		flashValidation(ctx, verrs, redirect)
		return
	}

	if _, err := reportService.CreateReport(ctx.Request.Context(), middleware.CurrentUser(ctx), target, targetID, &req); err != nil {
		middleware.FailAndRedirect(ctx, err, redirect)
		return
	}
	middleware.SucceedAndRedirect(ctx, "Denúncia enviada. Nossa equipe vai analisar.", redirect)
}
