package moverecord

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MoveRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid   message.GameUid `bson:"gameUid" json:"gameUid"`
	StepCount int             `bson:"stepCount" json:"stepCount"`
	Player    string          `bson:"player" json:"player"`
	MoveEdge  string          `bson:"moveEdge" json:"moveEdge"`
	Completed []int           `bson:"completed,omitempty" json:"completed,omitempty"`
	Scores    []int           `bson:"scores" json:"scores"`
}

func NewMoveRecode(m message.MoveMessage) *MoveRecode {
	return &MoveRecode{
		GameUid:   m.GameUid,
		StepCount: m.Step,
		Player:    m.Player,
		MoveEdge:  m.Line,
		Completed: m.Completed,
		Scores:    m.Scores,
	}
}
