package session

import (
	"context"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/zeromicro/go-zero/core/logx"
)

// Recorder keeps the audit trail of games. Calls must not block for long.
type Recorder interface {
	GameStarted(ctx context.Context, m message.GameStartMessage)
	MoveApplied(ctx context.Context, m message.MoveMessage)
	GameEnded(ctx context.Context, m message.GameEndMessage)
}

// Notifier delivers a fresh view of a table to the front-end.
type Notifier interface {
	Notify(ctx context.Context, v message.ViewMessage)
}

type NotifierFunc func(ctx context.Context, v message.ViewMessage)

func (f NotifierFunc) Notify(ctx context.Context, v message.ViewMessage) { f(ctx, v) }

type LogRecorder struct{}

func (LogRecorder) GameStarted(ctx context.Context, m message.GameStartMessage) {
	logx.WithContext(ctx).Infow("game started",
		logx.Field("game", m.GameUid),
		logx.Field("channel", m.Channel),
		logx.Field("size", []int{m.Width, m.Height}),
		logx.Field("players", m.Players))
}

func (LogRecorder) MoveApplied(ctx context.Context, m message.MoveMessage) {
	logx.WithContext(ctx).Debugw("move applied",
		logx.Field("game", m.GameUid),
		logx.Field("step", m.Step),
		logx.Field("player", m.Player),
		logx.Field("line", m.Line),
		logx.Field("completed", m.Completed))
}

func (LogRecorder) GameEnded(ctx context.Context, m message.GameEndMessage) {
	logx.WithContext(ctx).Infow("game ended",
		logx.Field("game", m.GameUid),
		logx.Field("winner", m.Winner),
		logx.Field("tie", m.Tie),
		logx.Field("cancelled", m.Cancelled),
		logx.Field("scores", m.Scores))
}

// Recorders fans every record out to each of its recorders.
type Recorders []Recorder

func (rs Recorders) GameStarted(ctx context.Context, m message.GameStartMessage) {
	for _, r := range rs {
		r.GameStarted(ctx, m)
	}
}

func (rs Recorders) MoveApplied(ctx context.Context, m message.MoveMessage) {
	for _, r := range rs {
		r.MoveApplied(ctx, m)
	}
}

func (rs Recorders) GameEnded(ctx context.Context, m message.GameEndMessage) {
	for _, r := range rs {
		r.GameEnded(ctx, m)
	}
}

// Notifiers hands every view to each of its notifiers in order.
type Notifiers []Notifier

func (ns Notifiers) Notify(ctx context.Context, v message.ViewMessage) {
	for _, n := range ns {
		n.Notify(ctx, v)
	}
}
