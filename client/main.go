package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/pprof"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	initConfig()
	logx.DisableStat()

	if Pprof {
		go pprof.Serve()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var err error
	switch *ModeConf {
	case "soak":
		err = Soak(ctx, os.Stderr)
	default:
		err = Play(ctx, os.Stdin, os.Stdout)
	}

	if err != nil {
		logx.Error(err)
		os.Exit(1)
	}
}
