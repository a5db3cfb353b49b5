package logic

import (
	"context"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/session"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/types"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
)

const linkCommand = "link"

type MessageLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MessageLogic {
	return &MessageLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Message feeds a chat message to the registry. A nil reply means the
// message was not for the game.
func (l *MessageLogic) Message(channel string, req *types.MessageRequest) (*session.Reply, error) {
	if req.Author.ID == "" {
		return nil, errors.Wrap(ErrBadRequest, "author id is required")
	}

	registry := l.svcCtx.Registry
	if strings.TrimSpace(req.Content) == registry.Prefix()+linkCommand {
		return &session.Reply{
			Text:      "Click [here](" + l.svcCtx.LinkURL(req.Author.ID) + ") to link your account.",
			Ephemeral: true,
		}, nil
	}

	reply, err := registry.HandleMessage(l.ctx, channel, req.Author, req.Content, req.Mentions)
	if err != nil {
		l.Errorw("handle message",
			logx.Field("channel", channel),
			logx.Field("author", req.Author.ID),
			logx.Field("error", err.Error()))
		return nil, err
	}
	return reply, nil
}
