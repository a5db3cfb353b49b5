package logic

import (
	"context"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/session"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type MoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MoveLogic {
	return &MoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Move draws a line clicked on a rich board by player.
func (l *MoveLogic) Move(req *types.MoveRequest, player string) error {
	if player == "" {
		return ErrUnknownIdentity
	}

	t := l.svcCtx.Registry.TableOf(player)
	if t == nil {
		return session.ErrNotPlaying
	}

	if _, err := t.Move(l.ctx, player, req.X, req.Y); err != nil {
		return err
	}

	l.Infow("remote move",
		logx.Field("game", t.GameUid()),
		logx.Field("player", player),
		logx.Field("line", []int{req.X, req.Y}))
	return nil
}
