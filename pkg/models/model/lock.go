package model

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const lockRetryInterval = time.Second / 5

var ErrLockNotHeld = errors.New("redis lock is not held")

type RedisLock struct {
	*redis.RedisLock
	name string
}

// NewLock returns a lock that expires after expireSeconds unless released.
func NewLock(rds *redis.Redis, LockName string, expireSeconds int) *RedisLock {
	l := &RedisLock{
		RedisLock: redis.NewRedisLock(rds, LockName),
		name:      LockName,
	}
	l.SetExpire(expireSeconds)
	return l
}

func (l *RedisLock) Name() string { return l.name }

// TryLock acquires the lock without waiting.
func (l *RedisLock) TryLock(ctx context.Context) (bool, error) {
	return l.AcquireCtx(ctx)
}

// Lock waits for the lock until ctx is done.
func (l *RedisLock) Lock(ctx context.Context) error {
	for {
		acquire, err := l.AcquireCtx(ctx)
		if err != nil {
			return err
		}

		if acquire {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
}

// Refresh pushes the expiry back. A lapsed lock nobody else took is held
// again; one taken by someone else reports ErrLockNotHeld.
func (l *RedisLock) Refresh(ctx context.Context) error {
	ok, err := l.AcquireCtx(ctx)
	if err != nil {
		return err
	}

	if !ok {
		return errors.Wrap(ErrLockNotHeld, l.name)
	}

	return nil
}

func (l *RedisLock) UnLock(ctx context.Context) error {
	release, err := l.ReleaseCtx(ctx)
	if err != nil {
		return err
	}

	if !release {
		return errors.Wrap(ErrLockNotHeld, l.name)
	}

	return nil
}
