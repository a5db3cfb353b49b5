package logic

import (
	"context"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/session"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type ReactionLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewReactionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ReactionLogic {
	return &ReactionLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *ReactionLogic) Reaction(channel string, req *types.ReactionRequest) (*session.Reply, error) {
	return l.svcCtx.Registry.HandleReaction(l.ctx, channel, req.Player, req.Emoji)
}
