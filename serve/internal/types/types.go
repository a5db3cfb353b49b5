package types

import "github.com/HuXin0817/dots-and-boxes-chat/pkg/models/session"

type MoveRequest struct {
	X int `uri:"x" binding:"min=0"`
	Y int `uri:"y" binding:"min=0"`
}

type LinkRequest struct {
	Id string `uri:"id" binding:"required"`
}

type ChannelRequest struct {
	Channel string `uri:"channel" binding:"required"`
}

type MessageRequest struct {
	Author   session.Member   `json:"author"`
	Content  string           `json:"content"`
	Mentions []session.Member `json:"mentions"`
}

type ReactionRequest struct {
	Player string `json:"player" binding:"required"`
	Emoji  string `json:"emoji" binding:"required"`
}
