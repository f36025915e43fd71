package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/conexao/internal/app/models/dto"
)

// FlashCookie carries one toast across a redirect.
const FlashCookie = "conexao_flash"

const flashMaxAge = 60

// SetFlash queues a toast for the next rendered page.
func SetFlash(c *gin.Context, kind, message string) {
	raw, err := json.Marshal(dto.Flash{Kind: kind, Message: message})
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookie, base64.RawURLEncoding.EncodeToString(raw), flashMaxAge, "/", "", false, true)
}

// popFlash reads and clears the queued toast.
func popFlash(c *gin.Context) *dto.Flash {
	value, err := c.Cookie(FlashCookie)
	if err != nil || value == "" {
		return nil
	}
	c.SetCookie(FlashCookie, "", -1, "/", "", false, true)

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var flash dto.Flash
	if err := json.Unmarshal(raw, &flash); err != nil || flash.Message == "" {
		return nil
	}
	return &flash
}
