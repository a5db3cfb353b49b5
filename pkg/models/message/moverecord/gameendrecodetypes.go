package moverecord

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	Tie       = "Tie"
	Cancelled = "Cancelled"
)

type GameEndRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid message.GameUid `bson:"gameUid" json:"gameUid"`
	Winner  string          `bson:"winner" json:"winner"`
	Scores  []int           `bson:"scores" json:"scores"`
}

func NewGameEndRecode(m message.GameEndMessage) *GameEndRecode {
	winner := m.Winner
	switch {
	case m.Cancelled:
		winner = Cancelled
	case m.Tie:
		winner = Tie
	}

	return &GameEndRecode{
		GameUid: m.GameUid,
		Winner:  winner,
		Scores:  m.Scores,
	}
}
