package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"
)

func TestDrain(t *testing.T) {
	ctx := context.Background()
	rds := redistest.CreateRedis(t)
	ch := message.Channel("general")

	for _, title := range []string{"first", "second", "third"} {
		_, err := rds.LpushCtx(ctx, ch.ListKey(), message.ViewMessage{Channel: "general", Title: title}.String())
		require.NoError(t, err)
	}
	_, err := rds.LpushCtx(ctx, ch.ListKey(), "not json")
	require.NoError(t, err)

	var got []string
	fail := errors.New("front-end down")
	r := NewRelay(rds, func(v message.ViewMessage) error {
		if v.Title == "second" && len(got) == 1 {
			got = append(got, "failed")
			return fail
		}
		got = append(got, v.Title)
		return nil
	})

	n, err := r.Drain(ctx, ch)
	require.ErrorIs(t, err, fail)
	assert.Equal(t, 1, n)

	n, err = r.Drain(ctx, ch)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"first", "failed", "second", "third"}, got)

	n, err = r.Drain(ctx, ch)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Print(&out)(message.ViewMessage{
		Channel:     "general",
		Title:       "Alice wins!",
		Description: "board",
		Finished:    true,
		Scores:      []message.ScoreLine{{Name: "Alice", Icon: "A", Score: 1}},
	}))

	assert.Contains(t, out.String(), "[general #")
	assert.Contains(t, out.String(), "Alice wins!")
	assert.Contains(t, out.String(), "Alice: 1")
}
