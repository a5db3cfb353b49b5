package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/render"
	"github.com/zeromicro/go-zero/core/logx"
)

const Footer = "`a1-b1` syntax for chat moves. " + ReactionMobile + " toggles mobile mode. " + ReactionResend + " re-sends this message."

// Table is one match hosted in a channel. Commands on a table are
// serialized by its mutex, which is the only writer of the game.
type Table struct {
	mu          sync.Mutex
	registry    *Registry
	uid         message.GameUid
	channel     string
	members     []Member
	icons       []rune
	fancy       []bool
	game        *chess.Game
	ended       bool
	cancelledBy string

	// tickets is handed out under mu; views and records go out in ticket
	// order, ticket 0 being the start of the game.
	tickets   uint64
	pubMu     sync.Mutex
	pubCond   *sync.Cond
	published uint64
}

func newTable(r *Registry, channel string, members []Member, width, height int) (*Table, error) {
	ids := make([]string, len(members))
	fancy := make([]bool, len(members))
	for i, m := range members {
		ids[i] = m.ID
		fancy[i] = !m.Mobile
	}

	game, err := chess.NewGame(ids, width, height)
	if err != nil {
		return nil, err
	}

	t := &Table{
		registry: r,
		uid:      message.NewGameUid(),
		channel:  channel,
		members:  members,
		icons:    assignIcons(members),
		fancy:    fancy,
		game:     game,
		tickets:  1,
	}
	t.pubCond = sync.NewCond(&t.pubMu)
	return t, nil
}

func (t *Table) GameUid() message.GameUid { return t.uid }

func (t *Table) Channel() string { return t.channel }

func (t *Table) Grid() chess.Grid { return t.game.Grid() }

func (t *Table) Members() []Member { return append([]Member(nil), t.members...) }

func (t *Table) Icons() []rune { return append([]rune(nil), t.icons...) }

func (t *Table) CurrentPlayer() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.game.CurrentPlayer()
}

func (t *Table) Scores() []int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.game.Scores()
}

func (t *Table) Ended() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.ended
}

func (t *Table) View() message.ViewMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.view()
}

func (t *Table) Move(ctx context.Context, player string, a, b int) (message.ViewMessage, error) {
	return t.Dispatch(ctx, Command{Action: ActionMove, Player: player, A: a, B: b})
}

func (t *Table) ToggleMobile(ctx context.Context, player string) (message.ViewMessage, error) {
	return t.Dispatch(ctx, Command{Action: ActionToggleMobile, Player: player})
}

func (t *Table) Resend(ctx context.Context, player string) (message.ViewMessage, error) {
	return t.Dispatch(ctx, Command{Action: ActionResend, Player: player})
}

func (t *Table) Cancel(ctx context.Context, player string) (message.ViewMessage, error) {
	return t.Dispatch(ctx, Command{Action: ActionCancel, Player: player})
}

// Dispatch runs cmd through the command table. Records and notifications go
// out after the table lock is released, in the order the commands were
// applied; a finished or cancelled table is removed from its registry before
// Dispatch returns. Notifiers must not dispatch on the table they are told
// about.
func (t *Table) Dispatch(ctx context.Context, cmd Command) (message.ViewMessage, error) {
	h, err := lookup(cmd.Action)
	if err != nil {
		return message.ViewMessage{}, err
	}

	t.mu.Lock()
	if t.ended {
		t.mu.Unlock()
		return message.ViewMessage{}, ErrTableEnded
	}

	player := t.memberIndex(cmd.Player)
	if player < 0 {
		t.mu.Unlock()
		return message.ViewMessage{}, ErrNotPlaying
	}

	o, err := h(t, player, cmd)
	if err != nil {
		t.mu.Unlock()
		logx.WithContext(ctx).Debugw("command rejected",
			logx.Field("game", t.uid),
			logx.Field("action", cmd.Action.String()),
			logx.Field("player", cmd.Player),
			logx.Field("error", err.Error()))
		return message.ViewMessage{}, err
	}
	ticket := t.tickets
	t.tickets++
	t.mu.Unlock()

	t.publish(ticket, func() {
		r := t.registry
		if o.move != nil {
			r.opts.recorder.MoveApplied(ctx, *o.move)
		}
		if o.end != nil {
			r.end(ctx, t)
			r.opts.recorder.GameEnded(ctx, *o.end)
		} else if o.move != nil {
			r.refresh(ctx, t.channel)
		}
		if o.notify {
			r.opts.notifier.Notify(ctx, o.view)
		}
	})

	return o.view, nil
}

// publish runs fn once every earlier ticket has been published.
func (t *Table) publish(ticket uint64, fn func()) {
	t.pubMu.Lock()
	for t.published != ticket {
		t.pubCond.Wait()
	}
	t.pubMu.Unlock()

	defer func() {
		t.pubMu.Lock()
		t.published++
		t.pubMu.Unlock()
		t.pubCond.Broadcast()
	}()
	fn()
}

func (t *Table) memberIndex(id string) int {
	for i, m := range t.members {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// view renders the table for whoever moves next. The caller holds t.mu.
func (t *Table) view() message.ViewMessage {
	current := t.game.CurrentPlayerIndex()
	style := render.Compact
	if t.fancy[current] {
		style = render.Rich
	}

	v := message.ViewMessage{
		TimeStamp: message.Now(),
		GameUid:   t.uid,
		Channel:   t.channel,
		Title:     t.members[current].Name + "'s turn",
		Description: render.Render(t.game, render.Options{
			Style: style,
			Icons: t.icons,
			Link:  t.registry.opts.link,
		}),
		Footer: Footer,
	}

	switch {
	case t.cancelledBy != "":
		v.Title = fmt.Sprintf("Game cancelled by %s. Go boo them!", t.cancelledBy)
		v.Cancelled = true
	case t.game.IsFinished():
		v.Finished = true
		if w, ok := t.game.Winner(); ok {
			v.Title = t.members[w].Name + " wins!"
		} else {
			v.Title = "It's a tie!"
		}
	}

	for i, s := range t.game.Scores() {
		v.Scores = append(v.Scores, message.ScoreLine{
			Player: t.members[i].ID,
			Name:   t.members[i].Name,
			Icon:   string(t.icons[i]),
			Score:  s,
		})
	}
	return v
}

func (t *Table) startMessage() message.GameStartMessage {
	grid := t.game.Grid()
	return message.GameStartMessage{
		TimeStamp: message.Now(),
		GameUid:   t.uid,
		Channel:   t.channel,
		Width:     grid.Width,
		Height:    grid.Height,
		Players:   t.game.Players(),
	}
}
