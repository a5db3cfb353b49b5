package pusher

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

const DefaultMaxBuffered = 10000

// Pusher buffers messages and hands them to PushLogic in batches, once per
// PushInterval and once more on Stop. A failed batch stays buffered; past
// MaxBuffered messages the oldest ones are dropped.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	MaxBuffered    int
	ErrorHandler   func(error)
	lock           sync.Mutex
	stop           chan struct{}
	done           chan struct{}
	once           sync.Once
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Error(err) },
		PushInterval: time.Second,
		MaxBuffered:  DefaultMaxBuffered,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.MessagesBuffer) == 0 {
		return nil
	}

	if err := p.PushLogic(p.MessagesBuffer...); err != nil {
		return err
	}

	p.MessagesBuffer = nil
	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
	if p.MaxBuffered > 0 && len(p.MessagesBuffer) > p.MaxBuffered {
		dropped := len(p.MessagesBuffer) - p.MaxBuffered
		p.MessagesBuffer = append(p.MessagesBuffer[:0:0], p.MessagesBuffer[dropped:]...)
		logx.Errorf("pusher buffer full, dropped %d oldest messages", dropped)
	}
}

func (p *Pusher[T]) Buffered() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.MessagesBuffer)
}

func (p *Pusher[T]) Start() {
	go func() {
		defer close(p.done)

		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			case <-p.stop:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
				return
			}
		}
	}()
}

// Stop flushes the buffer one last time and waits for the loop to exit.
// It must only be called after Start.
func (p *Pusher[T]) Stop() {
	p.once.Do(func() { close(p.stop) })
	<-p.done
}
