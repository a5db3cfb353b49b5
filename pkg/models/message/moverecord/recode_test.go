package moverecord

import (
	"testing"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/stretchr/testify/assert"
)

func TestNewGameEndRecode(t *testing.T) {
	uid := message.NewGameUid()

	r := NewGameEndRecode(message.GameEndMessage{GameUid: uid, Winner: "alice", Scores: []int{3, 1}})
	assert.Equal(t, "alice", r.Winner)
	assert.Equal(t, uid, r.GameUid)

	r = NewGameEndRecode(message.GameEndMessage{GameUid: uid, Tie: true})
	assert.Equal(t, Tie, r.Winner)

	r = NewGameEndRecode(message.GameEndMessage{GameUid: uid, Cancelled: true, Winner: "ignored"})
	assert.Equal(t, Cancelled, r.Winner)
}

func TestNewMoveRecode(t *testing.T) {
	r := NewMoveRecode(message.MoveMessage{Step: 3, Player: "bob", Line: "a1-b1", Completed: []int{0}, Scores: []int{0, 1}})
	assert.Equal(t, 3, r.StepCount)
	assert.Equal(t, "a1-b1", r.MoveEdge)
	assert.True(t, r.ID.IsZero())
}
