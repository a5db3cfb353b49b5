package logic

import (
	"context"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/svc"
	"github.com/zeromicro/go-zero/core/logx"
)

type ViewLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewViewLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ViewLogic {
	return &ViewLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *ViewLogic) View(channel string) (message.ViewMessage, error) {
	t := l.svcCtx.Registry.TableIn(channel)
	if t == nil {
		return message.ViewMessage{}, ErrNoGame
	}
	return t.View(), nil
}
