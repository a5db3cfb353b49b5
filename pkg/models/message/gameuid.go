package message

import "github.com/google/uuid"

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

// Short is the first block of the uid, enough to tell games apart in a log.
func (g GameUid) Short() string {
	if u, err := uuid.Parse(string(g)); err == nil {
		return u.String()[:8]
	}
	return string(g)
}
