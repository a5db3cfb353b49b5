package handler

import (
	"net/http"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/session"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/logic"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/types"
	"github.com/gin-gonic/gin"
)

func MessageHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ch types.ChannelRequest
		if err := c.ShouldBindUri(&ch); err != nil {
			badRequest(c, err)
			return
		}

		var req types.MessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}

		l := logic.NewMessageLogic(c.Request.Context(), svcCtx)
		reply, err := l.Message(ch.Channel, &req)
		writeReply(c, reply, err)
	}
}

func ReactionHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ch types.ChannelRequest
		if err := c.ShouldBindUri(&ch); err != nil {
			badRequest(c, err)
			return
		}

		var req types.ReactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}

		l := logic.NewReactionLogic(c.Request.Context(), svcCtx)
		reply, err := l.Reaction(ch.Channel, &req)
		writeReply(c, reply, err)
	}
}

func ViewHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ch types.ChannelRequest
		if err := c.ShouldBindUri(&ch); err != nil {
			badRequest(c, err)
			return
		}

		l := logic.NewViewLogic(c.Request.Context(), svcCtx)
		v, err := l.View(ch.Channel)
		if err != nil {
			writeError(c, err)
			return
		}
		writeJSON(c, http.StatusOK, v)
	}
}

// writeReply answers 204 when the message or reaction was not for the game.
func writeReply(c *gin.Context, reply *session.Reply, err error) {
	switch {
	case err != nil:
		writeError(c, err)
	case reply == nil:
		c.Status(http.StatusNoContent)
	default:
		writeJSON(c, http.StatusOK, reply)
	}
}
