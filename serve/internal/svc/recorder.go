package svc

import (
	"context"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message/moverecord"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/pusher"
	"github.com/pkg/errors"
)

// PusherRecorder queues records for a background writer.
type PusherRecorder struct {
	Pusher *pusher.Pusher[message.Record]
}

func (r *PusherRecorder) GameStarted(_ context.Context, m message.GameStartMessage) {
	r.Pusher.AddMessages(m)
}

func (r *PusherRecorder) MoveApplied(_ context.Context, m message.MoveMessage) {
	r.Pusher.AddMessages(m)
}

func (r *PusherRecorder) GameEnded(_ context.Context, m message.GameEndMessage) {
	r.Pusher.AddMessages(m)
}

type mongoModels struct {
	start moverecord.GameStartRecodeModel
	move  moverecord.MoveRecodeModel
	end   moverecord.GameEndRecodeModel
}

func newMongoPushLogic(url, db string) func(...message.Record) error {
	models := mongoModels{
		start: moverecord.NewGameStartRecodeModel(url, db),
		move:  moverecord.NewMoveRecodeModel(url, db),
		end:   moverecord.NewGameEndRecodeModel(url, db),
	}
	return models.insert
}

// insert writes records in order. A failure keeps the whole batch for the
// next round, so records already written may be written again.
func (m mongoModels) insert(records ...message.Record) (err error) {
	ctx := context.Background()
	for _, r := range records {
		switch r := r.(type) {
		case message.GameStartMessage:
			err = m.start.Insert(ctx, moverecord.NewGameStartRecode(r))
		case message.MoveMessage:
			err = m.move.Insert(ctx, moverecord.NewMoveRecode(r))
		case message.GameEndMessage:
			err = m.end.Insert(ctx, moverecord.NewGameEndRecode(r))
		default:
			err = errors.Errorf("unknown record %T", r)
		}
		if err != nil {
			return errors.Wrapf(err, "record game %s", r.Game())
		}
	}
	return nil
}
