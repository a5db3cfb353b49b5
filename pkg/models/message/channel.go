package message

import "fmt"

// Channel names the chat channel a table lives in.
type Channel string

// ListKey is the Redis list the channel's views are published to.
func (c Channel) ListKey() string {
	return fmt.Sprintf("Channel-%s-Views", string(c))
}

// LockName guards the channel while a game is hosted in it.
func (c Channel) LockName() string {
	return fmt.Sprintf("Channel-%s-Lock", string(c))
}

func (c Channel) ListLockName() string {
	return fmt.Sprintf("Channel-%s-Views-Lock", string(c))
}
