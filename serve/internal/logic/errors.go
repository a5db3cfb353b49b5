package logic

import (
	"net/http"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/session"
	"github.com/pkg/errors"
)

var (
	ErrUnknownIdentity = errors.New("request carries no player id")
	ErrNoGame          = errors.New("no game in this channel")
	ErrBadRequest      = errors.New("bad request")
)

// Status maps a logic error to the HTTP status and the text shown in the
// browser.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, ErrUnknownIdentity):
		return http.StatusNotFound, "I don't know who you are. Use the link command to link your browser with your chat account."
	case errors.Is(err, ErrNoGame):
		return http.StatusNotFound, "No game is being played in this channel."
	case errors.Is(err, session.ErrNotPlaying), errors.Is(err, session.ErrTableEnded):
		return http.StatusNotFound, "Uh, you're not playing a game."
	case errors.Is(err, chess.ErrNotYourTurn):
		return http.StatusForbidden, "Hey, you're not the current player."
	case errors.Is(err, chess.ErrOutOfBounds),
		errors.Is(err, chess.ErrInvalidLine),
		errors.Is(err, chess.ErrAlreadyDrawn),
		errors.Is(err, chess.ErrGameFinished):
		return http.StatusBadRequest, "That's an invalid move."
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "Something's gone wrong. Sorry, just a minute."
}
