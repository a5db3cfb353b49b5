package handler

import (
	"net/http"

	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/logic"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/types"
	"github.com/gin-gonic/gin"
)

func MoveHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.MoveRequest
		if err := c.ShouldBindUri(&req); err != nil {
			badRequest(c, err)
			return
		}

		player, _ := c.Cookie(IdCookie)
		l := logic.NewMoveLogic(c.Request.Context(), svcCtx)
		if err := l.Move(&req, player); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
