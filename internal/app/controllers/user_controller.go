package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/app/services"
	"github.com/yigit/conexao/internal/middleware"
	"github.com/yigit/conexao/internal/views"
)

// UserController handles profile pages
type UserController struct {
	userService   services.UserService
	reportService services.ReportService
	logger        zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, reportService services.ReportService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService:   userService,
		reportService: reportService,
		logger:        logger,
	}
}

// GetProfile renders a public profile
// GET /users/:id
func (c *UserController) GetProfile(ctx *gin.Context) {
	view, err := c.userService.GetUserProfile(ctx.Request.Context(), ctx.Param("id"), middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	middleware.RenderPage(ctx, http.StatusOK, "users_profile", &views.Page{
		Title: view.User.PublicName(),
		Data:  view,
	})
}

// MyProfile redirects to the acting user's public profile
// GET /profile
func (c *UserController) MyProfile(ctx *gin.Context) {
	ctx.Redirect(http.StatusSeeOther, "/users/"+middleware.CurrentUser(ctx).ID)
}

// EditProfile renders the profile form
// GET /profile/edit
func (c *UserController) EditProfile(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	middleware.RenderPage(ctx, http.StatusOK, "users_edit", &views.Page{
		Title: "Editar perfil",
		Form: &dto.UpdateProfileRequest{
			DisplayName: user.DisplayName,
			Phone:       user.Phone,
			Bio:         user.Bio,
		},
	})
}

// UpdateProfile saves the profile form
// POST /profile/edit
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	var req dto.UpdateProfileRequest
	verrs := middleware.BindForm(ctx, &req)
	if !verrs.HasErrors() {
		if _, err := c.userService.UpdateUserProfile(ctx.Request.Context(), user.ID, &req); err == nil {
			middleware.SucceedAndRedirect(ctx, "Perfil atualizado.", "/users/"+user.ID)
			return
		} else {
			verrs = dto.NewValidationErrors().AddError("form", middleware.ErrorMessage(err))
		}
	}

	middleware.RenderPage(ctx, http.StatusUnprocessableEntity, "users_edit", &views.Page{
		Title:  "Editar perfil",
		Form:   &req,
		Errors: verrs,
	})
}

// Report flags a user for moderation
// POST /users/:id/report
func (c *UserController) Report(ctx *gin.Context) {
	submitReport(ctx, c.reportService, models.ReportTargetUser, ctx.Param("id"), "/users/"+ctx.Param("id"))
}
