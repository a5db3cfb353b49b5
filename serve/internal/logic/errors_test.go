package logic

import (
	"net/http"
	"testing"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/session"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	for _, c := range []struct {
		err  error
		code int
	}{
		{ErrUnknownIdentity, http.StatusNotFound},
		{ErrNoGame, http.StatusNotFound},
		{session.ErrNotPlaying, http.StatusNotFound},
		{session.ErrTableEnded, http.StatusNotFound},
		{chess.ErrNotYourTurn, http.StatusForbidden},
		{errors.Wrapf(chess.ErrAlreadyDrawn, "%d-%d", 0, 1), http.StatusBadRequest},
		{chess.ErrInvalidLine, http.StatusBadRequest},
		{errors.Wrap(ErrBadRequest, "author id is required"), http.StatusBadRequest},
		{errors.New("mongo is down"), http.StatusInternalServerError},
	} {
		code, text := Status(c.err)
		assert.Equal(t, c.code, code, c.err.Error())
		assert.NotEmpty(t, text)
	}

	_, text := Status(chess.ErrOutOfBounds)
	assert.Equal(t, "That's an invalid move.", text)
}
