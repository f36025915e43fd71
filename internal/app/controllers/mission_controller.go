package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/conexao/internal/app/services"
	"github.com/yigit/conexao/internal/middleware"
	"github.com/yigit/conexao/internal/views"
)

// MissionController serves the partner missions pages
type MissionController struct {
	missionService services.MissionService
	logger         zerolog.Logger
}

// NewMissionController creates a new MissionController
func NewMissionController(missionService services.MissionService, logger zerolog.Logger) *MissionController {
	return &MissionController{missionService: missionService, logger: logger}
}

// List renders missions grouped by niche
// GET /missions
func (c *MissionController) List(ctx *gin.Context) {
	middleware.RenderPage(ctx, http.StatusOK, "missions_list", &views.Page{
		Title: "Missões",
		Data:  c.missionService.GetMissionsByNiche(ctx.Request.Context()),
	})
}

// Show renders one mission and its goals
// GET /missions/:id
func (c *MissionController) Show(ctx *gin.Context) {
	mission, err := c.missionService.GetMission(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	middleware.RenderPage(ctx, http.StatusOK, "missions_detail", &views.Page{
		Title: mission.Title,
		Data:  mission,
	})
}
