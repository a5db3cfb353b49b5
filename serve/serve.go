package main

import (
	"flag"
	"fmt"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/pprof"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/config"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/handler"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/svc"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/core/service"
)

var configFile = flag.String("f", "etc/serve.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	c.MustSetUp()

	ctx := svc.NewServiceContext(c)
	proc.AddShutdownListener(ctx.Stop)

	if c.Mode != service.DevMode && c.Mode != service.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterHandlers(router, ctx)

	if c.Mode == service.DevMode || c.Mode == service.TestMode {
		pprof.Register(router)
	}

	fmt.Printf("Starting http server at %s...\n", c.ListenOn)
	logx.Must(router.Run(c.ListenOn))
}
