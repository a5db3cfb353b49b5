package session

import (
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/notation"
	"github.com/pkg/errors"
)

type Action int8

const (
	ActionMove Action = iota
	ActionToggleMobile
	ActionResend
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "Move"
	case ActionToggleMobile:
		return "ToggleMobile"
	case ActionResend:
		return "Resend"
	case ActionCancel:
		return "Cancel"
	}
	return ""
}

const (
	ReactionMobile = "\U0001f4f1"
	ReactionResend = "\U0001f53d"
	ReactionCancel = "\u23f9\ufe0f"
)

var reactions = map[string]Action{
	ReactionMobile: ActionToggleMobile,
	ReactionResend: ActionResend,
	ReactionCancel: ActionCancel,
}

func ActionForReaction(emoji string) (Action, bool) {
	a, ok := reactions[emoji]
	return a, ok
}

// textCommands are the prefixed chat commands that act on a running table.
var textCommands = map[string]Action{
	"mobile": ActionToggleMobile,
	"resend": ActionResend,
	"cancel": ActionCancel,
}

// Command is one action of a player on a table. A and B are the endpoints of
// the line for ActionMove.
type Command struct {
	Action
	Player string
	A, B   int
}

// outcome is what a handler leaves for Dispatch to publish once the table
// lock is released.
type outcome struct {
	view   message.ViewMessage
	notify bool
	move   *message.MoveMessage
	end    *message.GameEndMessage
}

type handler func(t *Table, player int, cmd Command) (outcome, error)

var commands = map[Action]handler{
	ActionMove:         (*Table).move,
	ActionToggleMobile: (*Table).toggleMobile,
	ActionResend:       (*Table).resend,
	ActionCancel:       (*Table).cancel,
}

func (t *Table) move(player int, cmd Command) (outcome, error) {
	res, err := t.game.ApplyMove(cmd.Player, cmd.A, cmd.B)
	if err != nil {
		return outcome{}, err
	}

	o := outcome{
		notify: true,
		move: &message.MoveMessage{
			TimeStamp: message.Now(),
			GameUid:   t.uid,
			Step:      t.game.LinesDrawn(),
			Player:    cmd.Player,
			Line:      notation.FormatMove(cmd.A, cmd.B, t.game.Grid()),
			Completed: res.CompletedBoxes,
			Scores:    t.game.Scores(),
		},
	}

	if res.Finished {
		t.ended = true
		o.end = &message.GameEndMessage{
			TimeStamp: message.Now(),
			GameUid:   t.uid,
			Winner:    res.Winner,
			Tie:       res.Tie,
			Scores:    t.game.Scores(),
		}
	}

	o.view = t.view()
	return o, nil
}

// toggleMobile only needs a redraw when the player is the one looking at it.
func (t *Table) toggleMobile(player int, _ Command) (outcome, error) {
	t.fancy[player] = !t.fancy[player]
	return outcome{
		view:   t.view(),
		notify: player == t.game.CurrentPlayerIndex(),
	}, nil
}

func (t *Table) resend(int, Command) (outcome, error) {
	v := t.view()
	v.Resend = true
	return outcome{view: v, notify: true}, nil
}

func (t *Table) cancel(player int, _ Command) (outcome, error) {
	t.ended = true
	t.cancelledBy = t.members[player].Name
	return outcome{
		view:   t.view(),
		notify: true,
		end: &message.GameEndMessage{
			TimeStamp: message.Now(),
			GameUid:   t.uid,
			Cancelled: true,
			Scores:    t.game.Scores(),
		},
	}, nil
}

func lookup(a Action) (handler, error) {
	h, ok := commands[a]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAction, "%d", a)
	}
	return h, nil
}
