package notation

import (
	"testing"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	g := chess.Grid{Width: 4, Height: 3}

	tests := []struct {
		in    string
		point int
		err   error
	}{
		{"a1", 0, nil},
		{"E1", 4, nil},
		{"a2", 5, nil},
		{"c4", 17, nil},
		{" b3 ", 11, nil},
		{"f1", 0, chess.ErrOutOfBounds},
		{"a0", 0, chess.ErrOutOfBounds},
		{"a5", 0, chess.ErrOutOfBounds},
		{"1a", 0, ErrBadNotation},
		{"", 0, ErrBadNotation},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParsePoint(tt.in, g)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.point, p)
		})
	}
}

func TestParseMove(t *testing.T) {
	g := chess.Grid{Width: 4, Height: 4}

	a, b, err := ParseMove("A1-b1", g)
	require.NoError(t, err)
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)

	a, b, err = ParseMove("c2-c3", g)
	require.NoError(t, err)
	assert.Equal(t, 7, a)
	assert.Equal(t, 12, b)

	_, _, err = ParseMove("a1 b1", g)
	require.ErrorIs(t, err, ErrBadNotation)

	_, _, err = ParseMove("a1-z1", g)
	require.ErrorIs(t, err, chess.ErrOutOfBounds)

	assert.True(t, IsMove("a10-B10"))
	assert.False(t, IsMove("hello"))
}

func TestFormatRoundTrip(t *testing.T) {
	g := chess.Grid{Width: 5, Height: 2}
	for p := 0; p < g.PointsCount(); p++ {
		got, err := ParsePoint(FormatPoint(p, g), g)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	assert.Equal(t, "a1-a2", FormatMove(6, 0, g))
	assert.True(t, Fits(chess.Grid{Width: 25, Height: 1}))
	assert.False(t, Fits(chess.Grid{Width: 26, Height: 1}))
}
