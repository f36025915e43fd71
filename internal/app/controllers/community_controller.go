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

// CommunityController handles community related operations
type CommunityController struct {
	communityService services.CommunityService
	pageSize         int
	logger           zerolog.Logger
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService services.CommunityService, pageSize int, logger zerolog.Logger) *CommunityController {
	return &CommunityController{
		communityService: communityService,
		pageSize:         pageSize,
		logger:           logger,
	}
}

// GetAllCommunities renders the filtered community list
// GET /communities
func (c *CommunityController) GetAllCommunities(ctx *gin.Context) {
	var filter dto.CommunityFilterRequest
	verrs := middleware.BindQuery(ctx, &filter)
	if verrs.HasErrors() {
		filter = dto.CommunityFilterRequest{Q: filter.Q}
	}
	page, size := helpers.ParsePaginationParams(ctx, c.pageSize)

	viewerID := ""
	if user := middleware.CurrentUser(ctx); user != nil {
		viewerID = user.ID
	}

	list, err := c.communityService.GetAllCommunities(ctx.Request.Context(), &filter, page, size, viewerID)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	list.Query = ctx.Request.URL.Query()

	middleware.RenderPage(ctx, http.StatusOK, "communities_list", &views.Page{
		Title:  "Comunidades",
		Errors: verrs,
		Data:   list,
	})
}

// GetCommunityByID renders a community with its members and favors
// GET /communities/:id
func (c *CommunityController) GetCommunityByID(ctx *gin.Context) {
	detail, err := c.communityService.GetCommunityByID(ctx.Request.Context(), ctx.Param("id"), middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	middleware.RenderPage(ctx, http.StatusOK, "communities_detail", &views.Page{
		Title: detail.Community.Name,
		Data:  detail,
	})
}

// NewCommunity renders the community form
// GET /communities/new
func (c *CommunityController) NewCommunity(ctx *gin.Context) {
	middleware.RenderPage(ctx, http.StatusOK, "communities_new", &views.Page{
		Title: "Criar comunidade",
		Form:  &dto.CreateCommunityRequest{Type: string(models.CommunityPublic)},
	})
}

// CreateCommunity creates a community led by the acting user
// POST /communities
func (c *CommunityController) CreateCommunity(ctx *gin.Context) {
	var req dto.CreateCommunityRequest
	verrs := middleware.BindForm(ctx, &req)
	if !verrs.HasErrors() {
		community, err := c.communityService.CreateCommunity(ctx.Request.Context(), &req, middleware.CurrentUser(ctx))
		if err == nil {
			middleware.SucceedAndRedirect(ctx, "Comunidade criada!", "/communities/"+community.ID)
			return
		}
		verrs = dto.NewValidationErrors().AddError("form", middleware.ErrorMessage(err))
	}

	middleware.RenderPage(ctx, http.StatusUnprocessableEntity, "communities_new", &views.Page{
		Title:  "Criar comunidade",
		Form:   &req,
		Errors: verrs,
	})
}

// JoinCommunity adds the acting user to the community
// POST /communities/:id/join
func (c *CommunityController) JoinCommunity(ctx *gin.Context) {
	target := "/communities/" + ctx.Param("id")
	user := middleware.CurrentUser(ctx)
	if err := c.communityService.JoinCommunity(ctx.Request.Context(), ctx.Param("id"), user.ID); err != nil {
		middleware.FailAndRedirect(ctx, err, target)
		return
	}
	middleware.SucceedAndRedirect(ctx, "Bem-vindo(a) à comunidade!", target)
}

// LeaveCommunity removes the acting user from the community
// POST /communities/:id/leave
func (c *CommunityController) LeaveCommunity(ctx *gin.Context) {
	target := "/communities/" + ctx.Param("id")
	user := middleware.CurrentUser(ctx)
	if err := c.communityService.LeaveCommunity(ctx.Request.Context(), ctx.Param("id"), user.ID); err != nil {
		middleware.FailAndRedirect(ctx, err, target)
		return
	}
	middleware.SucceedAndRedirect(ctx, "Você saiu da comunidade.", target)
}
