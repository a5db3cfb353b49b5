package session

import (
	"fmt"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/notation"
	"github.com/pkg/errors"
)

var (
	ErrAlreadyPlaying = errors.New("author is already playing")
	ErrChannelBusy    = errors.New("channel already hosts a game")
	ErrBoardTooLarge  = errors.New("board is too large to render")
	ErrNotPlaying     = errors.New("player is not in this game")
	ErrTableEnded     = errors.New("game has ended")
	ErrUnknownAction  = errors.New("unknown action")
)

// AlreadyPlayingError names the invited members who are busy elsewhere.
type AlreadyPlayingError struct {
	Names []string
}

func (e *AlreadyPlayingError) Error() string {
	return fmt.Sprintf("%s already playing Dots and Boxes.", group(e.Names))
}

func group(names []string) string {
	switch len(names) {
	case 0:
		return "nobody is"
	case 1:
		return names[0] + " is"
	case 2:
		return fmt.Sprintf("%s and %s are", names[0], names[1])
	}
	return fmt.Sprintf("%s, and %s are", strings.Join(names[:len(names)-1], ", "), names[len(names)-1])
}

// Explain turns a rejected command into the line shown to the player. ok is
// false for failures the player cannot fix.
func Explain(err error) (text string, ok bool) {
	var busy *AlreadyPlayingError
	switch {
	case errors.As(err, &busy):
		return busy.Error(), true
	case errors.Is(err, ErrAlreadyPlaying):
		return "Hey, you're already playing a game!", true
	case errors.Is(err, ErrChannelBusy):
		return "A game is already being played in this channel.", true
	case errors.Is(err, ErrBoardTooLarge):
		return "That board is too large to render. Sorry!", true
	case errors.Is(err, chess.ErrInvalidSize):
		return "A board needs at least one box each way.", true
	case errors.Is(err, chess.ErrTooFewPlayers):
		return "Mention at least one other player to start a game.", true
	case errors.Is(err, chess.ErrNotYourTurn):
		return "Hey, you're not the current player.", true
	case errors.Is(err, ErrNotPlaying):
		return "Uh, you're not playing a game.", true
	case errors.Is(err, ErrTableEnded), errors.Is(err, chess.ErrGameFinished):
		return "That game is already over.", true
	case errors.Is(err, chess.ErrOutOfBounds),
		errors.Is(err, chess.ErrInvalidLine),
		errors.Is(err, chess.ErrAlreadyDrawn),
		errors.Is(err, notation.ErrBadNotation):
		return "Invalid move.", true
	}
	return "Something's gone wrong. Sorry, just a minute.", false
}
