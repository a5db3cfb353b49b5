package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/model"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const lockExpire = 5 // second

// Relay moves views published by the server to a chat front-end.
type Relay struct {
	rds     *redis.Redis
	deliver func(message.ViewMessage) error
}

func NewRelay(rds *redis.Redis, deliver func(message.ViewMessage) error) *Relay {
	return &Relay{rds: rds, deliver: deliver}
}

// Drain delivers the channel's queued views oldest first. A view that fails
// to deliver goes back to the tail of the list.
func (r *Relay) Drain(ctx context.Context, ch message.Channel) (n int, err error) {
	lock := model.NewLock(r.rds, ch.ListLockName(), lockExpire)
	lockCtx, cancel := context.WithTimeout(ctx, lockExpire*time.Second)
	defer cancel()

	if err = lock.Lock(lockCtx); err != nil {
		return 0, err
	}
	defer func() {
		if unlockErr := lock.UnLock(ctx); err == nil {
			err = unlockErr
		}
	}()

	for {
		l, err := r.rds.LlenCtx(ctx, ch.ListKey())
		if err != nil || l == 0 {
			return n, err
		}

		m, err := r.rds.RpopCtx(ctx, ch.ListKey())
		if errors.Is(err, redis.Nil) {
			return n, nil
		}
		if err != nil {
			return n, err
		}

		v, err := message.NewViewMessage(m)
		if err != nil {
			logx.WithContext(ctx).Errorw("drop malformed view", logx.Field("channel", string(ch)), logx.Field("view", m))
			continue
		}

		if err = r.deliver(v); err != nil {
			if _, pushErr := r.rds.RpushCtx(ctx, ch.ListKey(), m); pushErr != nil {
				logx.WithContext(ctx).Errorw("roll back view", logx.Field("channel", string(ch)), logx.Field("error", pushErr.Error()))
			}
			return n, err
		}
		n++
	}
}

// Print writes views to w the way a terminal front-end shows them.
func Print(w io.Writer) func(message.ViewMessage) error {
	return func(v message.ViewMessage) error {
		title := aurora.Bold(v.Title)
		switch {
		case v.Cancelled:
			title = aurora.Red(title)
		case v.Finished:
			title = aurora.Green(title)
		}

		if _, err := fmt.Fprintf(w, "%s [%s #%s] %s\n%s\n", aurora.Faint(v.TimeStamp), v.Channel, v.GameUid.Short(), title, v.Description); err != nil {
			return err
		}
		for _, s := range v.Scores {
			if _, err := fmt.Fprintf(w, "%s %s: %d\n", aurora.Cyan(s.Icon), s.Name, s.Score); err != nil {
				return err
			}
		}
		return nil
	}
}
