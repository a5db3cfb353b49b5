package pusher

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushAll(t *testing.T) {
	var got []string
	p := NewPusher(
		WithElements("a"),
		WithPushLogic(func(messages ...string) error {
			got = append(got, messages...)
			return nil
		}),
	)

	p.AddMessages("b", "c")
	require.NoError(t, p.PushAll())
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Zero(t, p.Buffered())
}

func TestFailedPushKeepsBuffer(t *testing.T) {
	p := NewPusher(WithPushLogic(func(...int) error { return errors.New("down") }))
	p.AddMessages(1, 2)

	require.Error(t, p.PushAll())
	assert.Equal(t, 2, p.Buffered())
}

func TestFailingPushIsBounded(t *testing.T) {
	var got []int
	down := true
	p := NewPusher(
		WithMaxBuffered[int](3),
		WithPushLogic(func(messages ...int) error {
			if down {
				return errors.New("down")
			}
			got = append(got, messages...)
			return nil
		}),
	)

	for i := 0; i < 10; i++ {
		p.AddMessages(i)
		require.Error(t, p.PushAll())
		assert.LessOrEqual(t, p.Buffered(), 3)
	}

	down = false
	require.NoError(t, p.PushAll())
	assert.Equal(t, []int{7, 8, 9}, got)
}

func TestStopFlushes(t *testing.T) {
	var mu sync.Mutex
	var got []int
	p := NewPusher(
		WithPushInterval[int](time.Hour),
		WithPushLogic(func(messages ...int) error {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, messages...)
			return nil
		}),
	)

	p.Start()
	p.AddMessages(1, 2, 3)
	p.Stop()
	p.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestIntervalPush(t *testing.T) {
	pushed := make(chan []int, 1)
	var errs []error
	p := NewPusher(
		WithPushInterval[int](10*time.Millisecond),
		WithErrorHandler[int](func(err error) { errs = append(errs, err) }),
		WithPushLogic(func(messages ...int) error {
			pushed <- messages
			return nil
		}),
	)
	p.AddMessages(7)
	p.Start()

	select {
	case m := <-pushed:
		assert.Equal(t, []int{7}, m)
	case <-time.After(time.Second):
		t.Fatal("interval push never happened")
	}

	p.Stop()
	assert.Empty(t, errs)
}
