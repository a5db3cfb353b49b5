package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	initConfig()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	r := NewRelay(RedisClient, Print(os.Stdout))
	interval := time.Duration(RelayConf.Interval) * time.Millisecond
	for {
		for _, ch := range RelayConf.Channels {
			if _, err := r.Drain(ctx, message.Channel(ch)); err != nil && ctx.Err() == nil {
				logx.Errorw("drain channel", logx.Field("channel", ch), logx.Field("error", err.Error()))
			}
		}

		select {
		case <-ctx.Done():
			logx.Close()
			return
		case <-time.After(interval):
		}
	}
}
