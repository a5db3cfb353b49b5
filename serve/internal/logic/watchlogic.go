package logic

import (
	"context"
	"time"

	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/svc"
	"github.com/gorilla/websocket"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

type WatchLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewWatchLogic(ctx context.Context, svcCtx *svc.ServiceContext) *WatchLogic {
	return &WatchLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Watch streams every view of channel to conn as a JSON text message,
// starting with the current one, until the watcher goes away.
func (l *WatchLogic) Watch(channel string, conn *websocket.Conn) {
	defer conn.Close()

	views, cancel := l.svcCtx.Hub.Watch(channel)
	defer cancel()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	if t := l.svcCtx.Registry.TableIn(channel); t != nil {
		if err := l.write(conn, websocket.TextMessage, []byte(t.View().String())); err != nil {
			return
		}
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case v, ok := <-views:
			if !ok {
				return
			}
			if err := l.write(conn, websocket.TextMessage, []byte(v.String())); err != nil {
				l.Debugw("watcher gone", logx.Field("channel", channel), logx.Field("error", err.Error()))
				return
			}
		case <-ticker.C:
			if err := l.write(conn, websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		case <-l.ctx.Done():
			return
		}
	}
}

func (l *WatchLogic) write(conn *websocket.Conn, messageType int, data []byte) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(messageType, data)
}
