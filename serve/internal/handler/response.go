package handler

import (
	"net/http"

	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/logic"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

const IdCookie = "id"

func writeJSON(c *gin.Context, code int, v any) {
	body, err := sonic.Marshal(v)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(code, "application/json; charset=utf-8", body)
}

func writeError(c *gin.Context, err error) {
	code, text := logic.Status(err)
	if code == http.StatusInternalServerError {
		logx.WithContext(c.Request.Context()).Error(err)
	}
	c.String(code, text)
}

func badRequest(c *gin.Context, err error) {
	c.String(http.StatusBadRequest, err.Error())
}
