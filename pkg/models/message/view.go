package message

import "github.com/bytedance/sonic"

type ScoreLine struct {
	Player string
	Name   string
	Icon   string
	Score  int
}

// ViewMessage is what a chat front-end shows for a table: an embed-like
// title, the rendered board and the score lines.
type ViewMessage struct {
	TimeStamp
	GameUid
	Channel     string
	Title       string
	Description string
	Scores      []ScoreLine
	Footer      string
	Finished    bool
	Cancelled   bool
	// Resend asks the front-end to post a fresh message instead of editing.
	Resend bool
}

func NewViewMessage(str string) (newViewMessage ViewMessage, err error) {
	err = sonic.UnmarshalString(str, &newViewMessage)
	return
}

func (v ViewMessage) String() string {
	str, _ := sonic.MarshalString(v)
	return str
}
