package handler

import (
	"math"
	"net/http"

	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/types"
	"github.com/gin-gonic/gin"
)

// LinkHandler binds the browser to a chat account for remote moves.
func LinkHandler(_ *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.LinkRequest
		if err := c.ShouldBindUri(&req); err != nil {
			badRequest(c, err)
			return
		}

		c.SetCookie(IdCookie, req.Id, math.MaxInt32, "/", "", false, false)
		c.String(http.StatusOK, "All good. You can exit this page now.")
	}
}
