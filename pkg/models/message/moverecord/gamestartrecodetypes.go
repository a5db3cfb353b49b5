package moverecord

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameStartRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid message.GameUid `bson:"gameUid" json:"gameUid"`
	Channel string          `bson:"channel" json:"channel"`
	Width   int             `bson:"width" json:"width"`
	Height  int             `bson:"height" json:"height"`
	Players []string        `bson:"players" json:"players"`
}

func NewGameStartRecode(m message.GameStartMessage) *GameStartRecode {
	return &GameStartRecode{
		GameUid: m.GameUid,
		Channel: m.Channel,
		Width:   m.Width,
		Height:  m.Height,
		Players: m.Players,
	}
}
