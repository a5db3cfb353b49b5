package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawLineCompletesBox(t *testing.T) {
	b := NewBoard(Grid{Width: 1, Height: 1})

	for _, l := range [][2]int{{0, 1}, {2, 3}, {0, 2}} {
		completed, err := b.DrawLine(l[0], l[1], 0)
		require.NoError(t, err)
		assert.Empty(t, completed)
	}
	assert.Equal(t, 3, b.Box(0).FillCount)
	_, owned := b.Box(0).Owner()
	assert.False(t, owned)

	completed, err := b.DrawLine(3, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, completed)

	box := b.Box(0)
	assert.True(t, box.Completed())
	owner, owned := box.Owner()
	assert.True(t, owned)
	assert.Equal(t, 1, owner)
	assert.Equal(t, 4, b.DrawnCount())
	assert.Empty(t, b.FreeLines())
}

func TestDrawLineCompletesTwoBoxes(t *testing.T) {
	b := NewBoard(Grid{Width: 2, Height: 1})

	for _, l := range [][2]int{{0, 1}, {1, 2}, {3, 4}, {4, 5}, {0, 3}, {2, 5}} {
		completed, err := b.DrawLine(l[0], l[1], 0)
		require.NoError(t, err)
		assert.Empty(t, completed)
	}

	completed, err := b.DrawLine(1, 4, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1}, completed)
}

func TestDrawLineErrorsLeaveBoardUnchanged(t *testing.T) {
	b := NewBoard(Grid{Width: 2, Height: 2})
	_, err := b.DrawLine(0, 1, 0)
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y int
		err  error
	}{
		{"redraw", 1, 0, ErrAlreadyDrawn},
		{"diagonal", 0, 4, ErrInvalidLine},
		{"row boundary", 2, 3, ErrInvalidLine},
		{"same point", 4, 4, ErrInvalidLine},
		{"negative", -1, 0, ErrOutOfBounds},
		{"past the end", 8, 9, ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completed, err := b.DrawLine(tt.x, tt.y, 1)
			require.ErrorIs(t, err, tt.err)
			assert.Nil(t, completed)
			assert.Equal(t, 1, b.DrawnCount())
			assert.Equal(t, 1, b.Box(0).FillCount)
			for i := 1; i < b.BoxesCount(); i++ {
				assert.Zero(t, b.Box(i).FillCount)
			}
		})
	}
}
