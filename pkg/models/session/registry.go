package session

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/notation"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/render"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	DefaultPrefix = "tii!"
	DefaultWidth  = 4
	DefaultHeight = 4
	MaxWidth      = notation.MaxColumns - 1
	MaxHeight     = 20
)

var startCommands = map[string]struct{}{
	"dab": {},
	"d&b": {},
}

type options struct {
	prefix        string
	defaultWidth  int
	defaultHeight int
	maxWidth      int
	maxHeight     int
	guard         ChannelGuard
	recorder      Recorder
	notifier      Notifier
	shuffle       func([]Member)
	link          render.LinkFunc
}

type Option func(*options)

func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

func WithDefaultSize(width, height int) Option {
	return func(o *options) { o.defaultWidth, o.defaultHeight = width, height }
}

// WithMaxSize caps the board; the width can never exceed MaxWidth.
func WithMaxSize(width, height int) Option {
	return func(o *options) { o.maxWidth, o.maxHeight = min(width, MaxWidth), height }
}

func WithGuard(guard ChannelGuard) Option {
	return func(o *options) { o.guard = guard }
}

func WithRecorder(recorder Recorder) Option {
	return func(o *options) { o.recorder = recorder }
}

func WithNotifier(notifier Notifier) Option {
	return func(o *options) { o.notifier = notifier }
}

func WithShuffle(shuffle func([]Member)) Option {
	return func(o *options) { o.shuffle = shuffle }
}

// WithLink sets the target of undrawn lines in rich boards.
func WithLink(link render.LinkFunc) Option {
	return func(o *options) { o.link = link }
}

// Registry tracks which table every player and every channel is bound to.
// A player plays at most one table at a time.
type Registry struct {
	mu       sync.Mutex
	players  map[string]*Table
	channels map[string]*Table
	opts     options
}

func NewRegistry(opts ...Option) *Registry {
	o := options{
		prefix:        DefaultPrefix,
		defaultWidth:  DefaultWidth,
		defaultHeight: DefaultHeight,
		maxWidth:      MaxWidth,
		maxHeight:     MaxHeight,
		guard:         NewMemoryGuard(),
		recorder:      LogRecorder{},
		notifier:      NotifierFunc(func(context.Context, message.ViewMessage) {}),
		shuffle: func(members []Member) {
			rand.Shuffle(len(members), func(i, j int) { members[i], members[j] = members[j], members[i] })
		},
		link: render.PointsLink,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Registry{
		players:  make(map[string]*Table),
		channels: make(map[string]*Table),
		opts:     o,
	}
}

func (r *Registry) Prefix() string { return r.opts.prefix }

func (r *Registry) TableOf(player string) *Table {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.players[player]
}

func (r *Registry) TableIn(channel string) *Table {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.channels[channel]
}

func (r *Registry) Tables() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.channels)
}

// Start opens a table in channel for author and the invited members, in a
// shuffled order. The channel guard is consulted without holding the
// registry lock, so the bindings are checked again once the claim is held.
func (r *Registry) Start(ctx context.Context, channel string, author Member, others []Member, width, height int) (*Table, error) {
	members := uniqueMembers(append([]Member{author}, others...))

	r.mu.Lock()
	err := r.available(channel, author, members, width, height)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	r.opts.shuffle(members)
	t, err := newTable(r, channel, members, width, height)
	if err != nil {
		return nil, err
	}

	claimed, err := r.opts.guard.Claim(ctx, channel)
	if err != nil {
		return nil, errors.Wrapf(err, "claim channel %s", channel)
	}
	if !claimed {
		return nil, ErrChannelBusy
	}

	r.mu.Lock()
	if err = r.available(channel, author, members, width, height); err != nil {
		r.mu.Unlock()
		r.release(ctx, channel)
		return nil, err
	}
	r.channels[channel] = t
	for _, m := range members {
		r.players[m.ID] = t
	}
	r.mu.Unlock()

	t.publish(0, func() {
		r.opts.recorder.GameStarted(ctx, t.startMessage())
		r.opts.notifier.Notify(ctx, t.View())
	})
	return t, nil
}

// available reports why members cannot sit down in channel. r.mu is held.
func (r *Registry) available(channel string, author Member, members []Member, width, height int) error {
	if _, c := r.players[author.ID]; c {
		return ErrAlreadyPlaying
	}

	var busy []string
	for _, m := range members {
		if m.ID == author.ID {
			continue
		}
		if _, c := r.players[m.ID]; c {
			busy = append(busy, m.Name)
		}
	}
	if len(busy) > 0 {
		return &AlreadyPlayingError{Names: busy}
	}

	if width > r.opts.maxWidth || height > r.opts.maxHeight {
		return errors.Wrapf(ErrBoardTooLarge, "%dx%d", width, height)
	}

	if _, c := r.channels[channel]; c {
		return ErrChannelBusy
	}
	return nil
}

// end frees every association to t.
func (r *Registry) end(ctx context.Context, t *Table) {
	r.mu.Lock()
	for _, m := range t.members {
		if r.players[m.ID] == t {
			delete(r.players, m.ID)
		}
	}
	if r.channels[t.channel] == t {
		delete(r.channels, t.channel)
	}
	r.mu.Unlock()

	r.release(ctx, t.channel)
}

func (r *Registry) release(ctx context.Context, channel string) {
	if err := r.opts.guard.Release(ctx, channel); err != nil {
		logx.WithContext(ctx).Errorw("release channel",
			logx.Field("channel", channel),
			logx.Field("error", err.Error()))
	}
}

// refresh extends the claim on a channel whose game is still going.
func (r *Registry) refresh(ctx context.Context, channel string) {
	if err := r.opts.guard.Refresh(ctx, channel); err != nil {
		logx.WithContext(ctx).Errorw("refresh channel",
			logx.Field("channel", channel),
			logx.Field("error", err.Error()))
	}
}

// Reply is what the front-end should post back. View is set when the board
// changed; Text carries a short answer to the author.
type Reply struct {
	Text      string               `json:"text,omitempty"`
	Ephemeral bool                 `json:"ephemeral,omitempty"`
	View      *message.ViewMessage `json:"view,omitempty"`
}

func textReply(err error) (*Reply, error) {
	text, ok := Explain(err)
	if !ok {
		return nil, err
	}
	return &Reply{Text: text, Ephemeral: true}, nil
}

// HandleMessage reacts to a chat message. It returns nil when the message is
// not meant for the game.
func (r *Registry) HandleMessage(ctx context.Context, channel string, author Member, content string, mentions []Member) (*Reply, error) {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, r.opts.prefix) {
		fields := strings.Fields(strings.TrimPrefix(content, r.opts.prefix))
		if len(fields) == 0 {
			return nil, nil
		}

		if _, c := startCommands[strings.ToLower(fields[0])]; c {
			return r.handleStart(ctx, channel, author, fields[1:], mentions)
		}

		if action, c := textCommands[strings.ToLower(fields[0])]; c {
			t := r.TableOf(author.ID)
			if t == nil || t.Channel() != channel {
				return textReply(ErrNotPlaying)
			}
			v, err := t.Dispatch(ctx, Command{Action: action, Player: author.ID})
			if err != nil {
				return textReply(err)
			}
			return &Reply{View: &v}, nil
		}
		return nil, nil
	}

	if !notation.IsMove(content) {
		return nil, nil
	}

	t := r.TableOf(author.ID)
	if t == nil || t.Channel() != channel {
		return nil, nil
	}

	a, b, err := notation.ParseMove(content, t.Grid())
	if err != nil {
		return textReply(err)
	}

	v, err := t.Move(ctx, author.ID, a, b)
	if err != nil {
		return textReply(err)
	}
	return &Reply{View: &v}, nil
}

// handleStart reads up to two leading numbers as width and height.
func (r *Registry) handleStart(ctx context.Context, channel string, author Member, args []string, mentions []Member) (*Reply, error) {
	size := []int{r.opts.defaultWidth, r.opts.defaultHeight}
	for i := 0; i < len(args) && i < len(size); i++ {
		n, err := strconv.Atoi(args[i])
		if err != nil {
			break
		}
		size[i] = n
	}

	t, err := r.Start(ctx, channel, author, mentions, size[0], size[1])
	if err != nil {
		return textReply(err)
	}

	v := t.View()
	return &Reply{View: &v}, nil
}

// HandleReaction maps a reaction on the channel's board to a command.
// Reactions from outsiders and unknown emoji are ignored.
func (r *Registry) HandleReaction(ctx context.Context, channel, player, emoji string) (*Reply, error) {
	t := r.TableIn(channel)
	if t == nil {
		return nil, nil
	}

	action, ok := ActionForReaction(emoji)
	if !ok {
		return nil, nil
	}

	v, err := t.Dispatch(ctx, Command{Action: action, Player: player})
	switch {
	case errors.Is(err, ErrNotPlaying), errors.Is(err, ErrTableEnded):
		return nil, nil
	case err != nil:
		return textReply(err)
	}
	return &Reply{View: &v}, nil
}
