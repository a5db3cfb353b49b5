package pprof

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

const maxAttempts = 16

// Register mounts the profiling routes under /debug/pprof.
func Register(router *gin.Engine) {
	pprof.Register(router)
}

// Serve runs the profiling routes alone on a random local port, trying
// another port while the chosen one is taken.
func Serve() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	Register(router)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < maxAttempts; i++ {
		addr := fmt.Sprintf("localhost:%d", 1024+r.Intn(0xffff-1024))
		logx.Infof("pprof listening on %s", addr)
		if err := router.Run(addr); err != nil {
			logx.Errorf("pprof on %s: %v", addr, err)
			continue
		}
		return
	}
}
