package chess

import "github.com/pkg/errors"

var (
	ErrOutOfBounds  = errors.New("position is out of bounds")
	ErrInvalidLine  = errors.New("not a valid line")
	ErrAlreadyDrawn = errors.New("line was already drawn")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrGameFinished = errors.New("game is finished")

	ErrInvalidSize     = errors.New("board size must be at least 1x1")
	ErrTooFewPlayers   = errors.New("a game needs at least two players")
	ErrDuplicatePlayer = errors.New("player joined twice")
)
