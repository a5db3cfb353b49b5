package message

import "github.com/bytedance/sonic"

// Record is one entry of a game's audit trail.
type Record interface {
	Game() GameUid
	String() string
}

type GameStartMessage struct {
	TimeStamp
	GameUid
	Channel string
	Width   int
	Height  int
	Players []string
}

func (m GameStartMessage) Game() GameUid { return m.GameUid }

func (m GameStartMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}

type MoveMessage struct {
	TimeStamp
	GameUid
	Step      int
	Player    string
	Line      string
	Completed []int
	Scores    []int
}

func (m MoveMessage) Game() GameUid { return m.GameUid }

func (m MoveMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}

type GameEndMessage struct {
	TimeStamp
	GameUid
	// Winner is empty on a tie or a cancelled game.
	Winner    string
	Tie       bool
	Cancelled bool
	Scores    []int
}

func (m GameEndMessage) Game() GameUid { return m.GameUid }

func (m GameEndMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}

func NewMoveMessage(str string) (newMoveMessage MoveMessage, err error) {
	err = sonic.UnmarshalString(str, &newMoveMessage)
	return
}
