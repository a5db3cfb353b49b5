package handler

import (
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/svc"
	"github.com/gin-gonic/gin"
)

func RegisterHandlers(router *gin.Engine, svcCtx *svc.ServiceContext) {
	router.GET("/move/:x/:y", MoveHandler(svcCtx))
	router.GET("/link/:id", LinkHandler(svcCtx))

	channels := router.Group("/channels/:channel")
	channels.POST("/messages", MessageHandler(svcCtx))
	channels.POST("/reactions", ReactionHandler(svcCtx))
	channels.GET("/view", ViewHandler(svcCtx))
	channels.GET("/watch", WatchHandler(svcCtx))
}
