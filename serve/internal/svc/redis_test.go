package svc

import (
	"context"
	"testing"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"
)

func TestRedisGuard(t *testing.T) {
	ctx := context.Background()
	rds := redistest.CreateRedis(t)

	a := NewRedisGuard(rds, 60)
	b := NewRedisGuard(rds, 60)

	ok, err := a.Claim(ctx, "general")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Claim(ctx, "general")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Release(ctx, "general"))
	require.NoError(t, a.Release(ctx, "general"))

	ok, err = b.Claim(ctx, "general")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisGuardRefresh(t *testing.T) {
	ctx := context.Background()
	rds := redistest.CreateRedis(t)
	key := message.Channel("general").LockName()

	a := NewRedisGuard(rds, 60)
	ok, err := a.Claim(ctx, "general")
	require.NoError(t, err)
	require.True(t, ok)

	// most of the claim has run out while the game goes on
	require.NoError(t, rds.ExpireCtx(ctx, key, 5))
	require.NoError(t, a.Refresh(ctx, "general"))
	ttl, err := rds.TtlCtx(ctx, key)
	require.NoError(t, err)
	assert.Greater(t, ttl, 5)

	assert.NoError(t, a.Refresh(ctx, "random"))

	// the claim lapsed and another process took the channel
	_, err = rds.DelCtx(ctx, key)
	require.NoError(t, err)
	b := NewRedisGuard(rds, 60)
	ok, err = b.Claim(ctx, "general")
	require.NoError(t, err)
	require.True(t, ok)
	assert.ErrorIs(t, a.Refresh(ctx, "general"), model.ErrLockNotHeld)
}

func TestRedisPushLogic(t *testing.T) {
	ctx := context.Background()
	rds := redistest.CreateRedis(t)

	push := newRedisPushLogic(rds, 120)
	require.NoError(t, push(
		message.ViewMessage{Channel: "general", Title: "first"},
		message.ViewMessage{Channel: "random", Title: "other"},
		message.ViewMessage{Channel: "general", Title: "second"},
	))

	key := message.Channel("general").ListKey()
	n, err := rds.LlenCtx(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	oldest, err := rds.RpopCtx(ctx, key)
	require.NoError(t, err)
	v, err := message.NewViewMessage(oldest)
	require.NoError(t, err)
	assert.Equal(t, "first", v.Title)

	ttl, err := rds.TtlCtx(ctx, key)
	require.NoError(t, err)
	assert.Greater(t, ttl, 0)
}
