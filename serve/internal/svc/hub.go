package svc

import (
	"context"
	"sync"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/zeromicro/go-zero/core/logx"
)

const watcherBuffer = 8

// ViewHub fans views out to the watchers of each channel.
type ViewHub struct {
	mu       sync.Mutex
	watchers map[string]map[chan message.ViewMessage]struct{}
}

func NewViewHub() *ViewHub {
	return &ViewHub{watchers: make(map[string]map[chan message.ViewMessage]struct{})}
}

// Watch subscribes to channel. The returned cancel must be called once the
// watcher is gone; it closes the subscription.
func (h *ViewHub) Watch(channel string) (<-chan message.ViewMessage, func()) {
	ch := make(chan message.ViewMessage, watcherBuffer)

	h.mu.Lock()
	if h.watchers[channel] == nil {
		h.watchers[channel] = make(map[chan message.ViewMessage]struct{})
	}
	h.watchers[channel][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			delete(h.watchers[channel], ch)
			if len(h.watchers[channel]) == 0 {
				delete(h.watchers, channel)
			}
			close(ch)
		})
	}
}

func (h *ViewHub) Watchers(channel string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.watchers[channel])
}

// Notify never blocks; a watcher that fell behind misses the view.
func (h *ViewHub) Notify(ctx context.Context, v message.ViewMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.watchers[v.Channel] {
		select {
		case ch <- v:
		default:
			logx.WithContext(ctx).Slowf("watcher of %s is behind, dropping view", v.Channel)
		}
	}
}
