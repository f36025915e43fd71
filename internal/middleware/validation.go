package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/pkg/validation"
)

// BindForm binds the request form into obj and returns inline field errors,
// or nil when the form is valid.
func BindForm(c *gin.Context, obj any) *dto.ValidationErrors {
	if err := c.ShouldBind(obj); err != nil {
		return validation.FieldErrors(err)
	}
	return nil
}

// BindQuery binds the query string into obj; invalid values are reported the same way.
func BindQuery(c *gin.Context, obj any) *dto.ValidationErrors {
	if err := c.ShouldBindQuery(obj); err != nil {
		return validation.FieldErrors(err)
	}
	return nil
}
