package session

import (
	"context"
	"sync"
)

// ChannelGuard allows one game per channel, possibly across processes.
// Refresh is called after every move of a game still in progress, so a claim
// that expires only lapses for idle games.
type ChannelGuard interface {
	Claim(ctx context.Context, channel string) (bool, error)
	Refresh(ctx context.Context, channel string) error
	Release(ctx context.Context, channel string) error
}

type MemoryGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{held: make(map[string]struct{})}
}

func (g *MemoryGuard) Claim(_ context.Context, channel string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, c := g.held[channel]; c {
		return false, nil
	}
	g.held[channel] = struct{}{}
	return true, nil
}

// Refresh is a no-op, memory claims never expire.
func (g *MemoryGuard) Refresh(context.Context, string) error { return nil }

func (g *MemoryGuard) Release(_ context.Context, channel string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.held, channel)
	return nil
}
