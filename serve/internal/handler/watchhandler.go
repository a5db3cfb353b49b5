package handler

import (
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/logic"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/zeromicro/go-zero/core/logx"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// WatchHandler upgrades to a websocket carrying the channel's views.
func WatchHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ch types.ChannelRequest
		if err := c.ShouldBindUri(&ch); err != nil {
			badRequest(c, err)
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logx.WithContext(c.Request.Context()).Errorf("websocket upgrade: %v", err)
			return
		}

		logic.NewWatchLogic(c.Request.Context(), svcCtx).Watch(ch.Channel, conn)
	}
}
