package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/pkg/apperrors"
	"github.com/yigit/conexao/internal/pkg/logger"
	"github.com/yigit/conexao/internal/views"
)

// RenderPage fills the shared layout fields of page and renders it
func RenderPage(c *gin.Context, status int, name string, page *views.Page) {
	page.Path = c.Request.URL.Path
	page.User = CurrentUser(c)
	page.Unread = c.GetInt(ContextUnreadKey)
	page.Theme = CurrentTheme(c)
	if page.Flash == nil {
		page.Flash = popFlash(c)
	}
	c.HTML(status, name, page)
}

// HandlePageError renders the error page matching err
func HandlePageError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrUnauthenticated, apperrors.ErrTokenInvalid, apperrors.ErrTokenExpired):
		c.Redirect(http.StatusSeeOther, "/login")
		return
	case apperrors.IsNotFound(err):
		renderError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Não encontramos o que você procurava.")
		return
	case errors.Is(err, apperrors.ErrPermissionDenied):
		renderError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Você não tem permissão para acessar esta página.")
		return
	case errors.Is(err, apperrors.ErrSimulatedFailure):
		renderError(c, http.StatusServiceUnavailable, dto.ErrorCodeSimulatedFailure, ErrorMessage(err))
		return
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled page error")
		_ = c.Error(err)
		renderError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Algo deu errado. Tente novamente mais tarde.")
	}
}

func renderError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	RenderPage(c, status, "error", &views.Page{
		Title: "Erro",
		Data:  views.ErrorData{Status: status, Code: code, Message: message},
	})
}

// NotFound renders the 404 page for unknown routes
func NotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Página não encontrada.")
}

// FailAndRedirect turns an action error into an error toast on the target page
func FailAndRedirect(c *gin.Context, err error, target string) {
	if apperrors.Is(err, apperrors.ErrUnauthenticated, apperrors.ErrTokenInvalid, apperrors.ErrTokenExpired) {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	SetFlash(c, dto.FlashError, ErrorMessage(err))
	c.Redirect(http.StatusSeeOther, target)
}

// SucceedAndRedirect shows a success toast on the target page
func SucceedAndRedirect(c *gin.Context, message, target string) {
	SetFlash(c, dto.FlashSuccess, message)
	c.Redirect(http.StatusSeeOther, target)
}

// ErrorMessage returns the Portuguese message shown to users for err
func ErrorMessage(err error) string {
	if msg := apperrors.UserMessage(err); msg != "" {
		return msg
	}

	switch {
	case errors.Is(err, apperrors.ErrSimulatedFailure):
		return "O servidor não respondeu como esperado. Tente novamente."
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "E-mail ou senha incorretos."
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return "Já existe uma conta com esse e-mail."
	case errors.Is(err, apperrors.ErrInvalidTransition):
		return "Esta ação não está disponível para o status atual do favor."
	case errors.Is(err, apperrors.ErrOwnFavor):
		return "Você não pode aceitar o seu próprio favor."
	case errors.Is(err, apperrors.ErrAlreadyParticipant):
		return "Você já participa deste favor."
	case errors.Is(err, apperrors.ErrAlreadyRated):
		return "Você já avaliou este favor."
	case errors.Is(err, apperrors.ErrInvalidRating):
		return "A nota deve ser de 1 a 5."
	case errors.Is(err, apperrors.ErrAlreadyMember):
		return "Você já participa desta comunidade."
	case errors.Is(err, apperrors.ErrNotMember):
		return "Você não participa desta comunidade."
	case errors.Is(err, apperrors.ErrPrivateCommunity):
		return "Esta comunidade é privada."
	case errors.Is(err, apperrors.ErrCreatorCannotLeave):
		return "Quem criou a comunidade não pode sair dela."
	case errors.Is(err, apperrors.ErrReportAlreadyClosed):
		return "Esta denúncia já foi analisada."
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return "Este registro já existe."
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return "Você não tem permissão para esta ação."
	case errors.Is(err, apperrors.ErrBadRequest):
		return "Pedido inválido."
	case apperrors.IsNotFound(err):
		return "Item não encontrado."
	default:
		return "Não foi possível concluir a operação."
	}
}
