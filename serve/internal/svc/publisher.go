package svc

import (
	"context"
	"time"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/model"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const publishTimeout = 5 * time.Second

func (s *ServiceContext) publish(_ context.Context, v message.ViewMessage) {
	s.ViewPusher.AddMessages(v)
}

// newRedisPushLogic pushes views onto their channel's list. Each list lives
// expireSeconds per queued view.
func newRedisPushLogic(rds *redis.Redis, expireSeconds int) func(...message.ViewMessage) error {
	return func(views ...message.ViewMessage) error {
		channels := make(map[message.Channel][]any)
		var order []message.Channel
		for _, v := range views {
			ch := message.Channel(v.Channel)
			if _, c := channels[ch]; !c {
				order = append(order, ch)
			}
			channels[ch] = append(channels[ch], v.String())
		}

		for _, ch := range order {
			if err := pushViews(rds, ch, channels[ch], expireSeconds); err != nil {
				return err
			}
		}
		return nil
	}
}

func pushViews(rds *redis.Redis, ch message.Channel, views []any, expireSeconds int) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	lock := model.NewLock(rds, ch.ListLockName(), int(publishTimeout/time.Second))
	if err = lock.Lock(ctx); err != nil {
		return err
	}
	defer func() {
		if unlockErr := lock.UnLock(ctx); err == nil {
			err = unlockErr
		}
	}()

	if _, err = rds.LpushCtx(ctx, ch.ListKey(), views...); err != nil {
		return err
	}

	length, err := rds.LlenCtx(ctx, ch.ListKey())
	if err != nil {
		return err
	}

	return rds.ExpireCtx(ctx, ch.ListKey(), expireSeconds*length)
}
