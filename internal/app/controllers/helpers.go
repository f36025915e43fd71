package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/middleware"
)

// safeRedirect only lets local paths through.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

// flashValidation reports the first invalid field of an action form as a toast.
func flashValidation(ctx *gin.Context, verrs *dto.ValidationErrors, target string) {
	msg := "Verifique os dados enviados."
	if verrs.HasErrors() {
		msg = verrs.Errors[0].Message
	}
	middleware.SetFlash(ctx, dto.FlashError, msg)
	ctx.Redirect(http.StatusSeeOther, target)
}
