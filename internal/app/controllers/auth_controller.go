// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/app/services"
	"github.com/yigit/conexao/internal/middleware"
	"github.com/yigit/conexao/internal/pkg/apperrors"
	"github.com/yigit/conexao/internal/views"
)

// AuthController handles the login, registration and logout pages
type AuthController struct {
	authService    *services.AuthService
	authMiddleware *middleware.AuthMiddleware
	logger         zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, authMiddleware *middleware.AuthMiddleware, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:    authService,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

// ShowLogin renders the login form
// GET /login
func (c *AuthController) ShowLogin(ctx *gin.Context) {
	if middleware.CurrentUser(ctx) != nil {
		ctx.Redirect(http.StatusSeeOther, "/")
		return
	}
	middleware.RenderPage(ctx, http.StatusOK, "login", &views.Page{
		Title: "Entrar",
		Form:  &dto.LoginRequest{},
		Data:  safeNext(ctx.Query("next")),
	})
}

// Login checks the credentials and starts a session
// POST /login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	next := safeNext(ctx.PostForm("next"))

	if verrs := middleware.BindForm(ctx, &req); verrs.HasErrors() {
		middleware.RenderPage(ctx, http.StatusUnprocessableEntity, "login", &views.Page{
			Title: "Entrar", Form: &req, Errors: verrs, Data: next,
		})
		return
	}

	user, token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, apperrors.ErrSimulatedFailure) {
			status = http.StatusServiceUnavailable
		}
		verrs := dto.NewValidationErrors().AddError("form", middleware.ErrorMessage(err))
		middleware.RenderPage(ctx, status, "login", &views.Page{
			Title: "Entrar", Form: &dto.LoginRequest{Email: req.Email}, Errors: verrs, Data: next,
		})
		return
	}

	c.authMiddleware.StartSession(ctx, token, c.authService.SessionTTL())
	middleware.SucceedAndRedirect(ctx, "Bem-vindo(a) de volta, "+user.PublicName()+"!", next)
}

// ShowRegister renders the sign-up form
// GET /register
func (c *AuthController) ShowRegister(ctx *gin.Context) {
	middleware.RenderPage(ctx, http.StatusOK, "register", &views.Page{
		Title: "Criar conta",
		Form:  &dto.RegisterRequest{},
	})
}

// Register creates an account and signs it in
// POST /register
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if verrs := middleware.BindForm(ctx, &req); verrs.HasErrors() {
		req.Password, req.ConfirmPassword = "", ""
		middleware.RenderPage(ctx, http.StatusUnprocessableEntity, "register", &views.Page{
			Title: "Criar conta", Form: &req, Errors: verrs,
		})
		return
	}

	user, token, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		req.Password, req.ConfirmPassword = "", ""
		verrs := dto.NewValidationErrors()
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			verrs.AddError("email", middleware.ErrorMessage(err))
		} else {
			verrs.AddError("form", middleware.ErrorMessage(err))
		}
		middleware.RenderPage(ctx, http.StatusUnprocessableEntity, "register", &views.Page{
			Title: "Criar conta", Form: &req, Errors: verrs,
		})
		return
	}

	c.logger.Info().Str("userID", user.ID).Msg("Account created from the register page")
	c.authMiddleware.StartSession(ctx, token, c.authService.SessionTTL())
	middleware.SucceedAndRedirect(ctx, "Conta criada! Que bom ter você por aqui.", "/")
}

// Logout ends the session
// POST /logout
func (c *AuthController) Logout(ctx *gin.Context) {
	c.authMiddleware.ClearSession(ctx)
	middleware.SucceedAndRedirect(ctx, "Você saiu da sua conta.", "/login")
}

// safeNext keeps post-login redirects on this site and away from the login page.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/login") {
		return "/"
	}
	return safeRedirect(next)
}
