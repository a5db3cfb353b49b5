package message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewMessageDecodesWhatItEncodes(t *testing.T) {
	v := ViewMessage{
		TimeStamp:   NewTimeStamp(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)),
		GameUid:     NewGameUid(),
		Channel:     "general",
		Title:       "alice's turn",
		Description: "`·`[` `](0/1)`·`",
		Scores:      []ScoreLine{{Player: "1", Name: "alice", Icon: "a", Score: 2}},
	}

	got, err := NewViewMessage(v.String())
	require.NoError(t, err)
	assert.Equal(t, v, got)
	assert.Equal(t, 30, got.TimeStamp.Time().Minute())
}

func TestChannelKeys(t *testing.T) {
	c := Channel("42")
	assert.Equal(t, "Channel-42-Views", c.ListKey())
	assert.Equal(t, "Channel-42-Lock", c.LockName())
	assert.Equal(t, "Channel-42-Views-Lock", c.ListLockName())
	assert.NotEqual(t, NewGameUid(), NewGameUid())

	uid := GameUid("1f0e2d3c-aaaa-4bbb-8ccc-123456789abc")
	assert.Equal(t, "1f0e2d3c", uid.Short())
	assert.Equal(t, "local", GameUid("local").Short())
}
