package svc

import (
	"context"
	"sync"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/model"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// RedisGuard claims a channel across every process sharing the Redis.
type RedisGuard struct {
	rds           *redis.Redis
	expireSeconds int
	mu            sync.Mutex
	locks         map[string]*model.RedisLock
}

func NewRedisGuard(rds *redis.Redis, expireSeconds int) *RedisGuard {
	return &RedisGuard{
		rds:           rds,
		expireSeconds: expireSeconds,
		locks:         make(map[string]*model.RedisLock),
	}
}

func (g *RedisGuard) Claim(ctx context.Context, channel string) (bool, error) {
	lock := model.NewLock(g.rds, message.Channel(channel).LockName(), g.expireSeconds)
	ok, err := lock.TryLock(ctx)
	if err != nil || !ok {
		return false, err
	}

	g.mu.Lock()
	g.locks[channel] = lock
	g.mu.Unlock()
	return true, nil
}

func (g *RedisGuard) Refresh(ctx context.Context, channel string) error {
	g.mu.Lock()
	lock, ok := g.locks[channel]
	g.mu.Unlock()

	if !ok {
		return nil
	}
	return lock.Refresh(ctx)
}

func (g *RedisGuard) Release(ctx context.Context, channel string) error {
	g.mu.Lock()
	lock, ok := g.locks[channel]
	delete(g.locks, channel)
	g.mu.Unlock()

	if !ok {
		return nil
	}
	return lock.UnLock(ctx)
}
