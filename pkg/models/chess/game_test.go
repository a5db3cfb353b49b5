package chess

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type move struct {
	player string
	a, b   int
}

func play(t *testing.T, g *Game, moves []move) (last MoveResult) {
	t.Helper()
	for _, m := range moves {
		var err error
		last, err = g.ApplyMove(m.player, m.a, m.b)
		require.NoError(t, err, "%s draws %d-%d", m.player, m.a, m.b)
	}
	return
}

func TestNewGame(t *testing.T) {
	_, err := NewGame([]string{"alice"}, 2, 2)
	require.ErrorIs(t, err, ErrTooFewPlayers)

	_, err = NewGame([]string{"alice", "alice"}, 2, 2)
	require.ErrorIs(t, err, ErrDuplicatePlayer)

	_, err = NewGame([]string{"alice", "bob"}, 2, 0)
	require.ErrorIs(t, err, ErrInvalidSize)

	g, err := NewGame([]string{"alice", "bob"}, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, InProgress, g.State())
	assert.Equal(t, "alice", g.CurrentPlayer())
	assert.Equal(t, []int{0, 0}, g.Scores())
	assert.Equal(t, Grid{Width: 3, Height: 2}, g.Grid())
}

func TestSingleBoxGame(t *testing.T) {
	g, err := NewGame([]string{"alice", "bob"}, 1, 1)
	require.NoError(t, err)

	r, err := g.ApplyMove("alice", 0, 1)
	require.NoError(t, err)
	assert.True(t, r.TurnAdvanced)
	assert.Equal(t, "bob", g.CurrentPlayer())

	r, err = g.ApplyMove("bob", 2, 3)
	require.NoError(t, err)
	assert.True(t, r.TurnAdvanced)
	assert.Equal(t, "alice", g.CurrentPlayer())

	r, err = g.ApplyMove("alice", 0, 2)
	require.NoError(t, err)
	assert.True(t, r.TurnAdvanced)
	assert.False(t, r.Finished)

	r, err = g.ApplyMove("bob", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, r.CompletedBoxes)
	assert.True(t, r.Finished)
	assert.False(t, r.TurnAdvanced)
	assert.Equal(t, "bob", r.Winner)
	assert.False(t, r.Tie)

	assert.True(t, g.IsFinished())
	assert.Equal(t, []int{0, 1}, g.Scores())
	w, ok := g.Winner()
	assert.True(t, ok)
	assert.Equal(t, 1, w)

	_, err = g.ApplyMove("bob", 0, 1)
	require.ErrorIs(t, err, ErrGameFinished)
}

func TestThreePlayerTie(t *testing.T) {
	g, err := NewGame([]string{"a", "b", "c"}, 2, 1)
	require.NoError(t, err)

	r := play(t, g, []move{
		{"a", 1, 4},
		{"b", 0, 1},
		{"c", 3, 4},
		{"a", 0, 3},
		{"a", 1, 2},
		{"b", 4, 5},
		{"c", 2, 5},
	})

	assert.True(t, r.Finished)
	assert.True(t, r.Tie)
	assert.Empty(t, r.Winner)
	assert.True(t, g.IsTie())
	_, ok := g.Winner()
	assert.False(t, ok)
	assert.Equal(t, []int{1, 0, 1}, g.Scores())
}

func TestCompletingBoxKeepsTurn(t *testing.T) {
	g, err := NewGame([]string{"a", "b"}, 2, 1)
	require.NoError(t, err)

	play(t, g, []move{
		{"a", 0, 1},
		{"b", 3, 4},
		{"a", 0, 3},
	})
	assert.Equal(t, "b", g.CurrentPlayer())

	r, err := g.ApplyMove("b", 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, r.CompletedBoxes)
	assert.False(t, r.TurnAdvanced)
	assert.Equal(t, "b", g.CurrentPlayer())
	assert.Equal(t, []int{0, 1}, g.Scores())
}

func TestRejectedMovesLeaveGameUnchanged(t *testing.T) {
	g, err := NewGame([]string{"a", "b"}, 2, 2)
	require.NoError(t, err)
	play(t, g, []move{{"a", 0, 1}})

	tests := []struct {
		name   string
		player string
		a, b   int
		err    error
	}{
		{"not your turn", "a", 1, 2, ErrNotYourTurn},
		{"stranger", "mallory", 1, 2, ErrNotYourTurn},
		{"diagonal", "b", 0, 4, ErrInvalidLine},
		{"row boundary", "b", 2, 3, ErrInvalidLine},
		{"out of bounds", "b", 8, 9, ErrOutOfBounds},
		{"already drawn", "b", 1, 0, ErrAlreadyDrawn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.ApplyMove(tt.player, tt.a, tt.b)
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, 1, g.LinesDrawn())
			assert.Equal(t, "b", g.CurrentPlayer())
			assert.Equal(t, []int{0, 0}, g.Scores())
			assert.Equal(t, 1, g.Board().Box(0).FillCount)
		})
	}
}

func TestDecideWinner(t *testing.T) {
	tests := []struct {
		scores []int
		winner int
	}{
		{[]int{3, 1}, 0},
		{[]int{1, 3}, 1},
		{[]int{2, 2}, noWinner},
		{[]int{1, 2, 2}, noWinner},
		{[]int{2, 2, 3}, 2},
		{[]int{0, 4, 0}, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.winner, decideWinner(tt.scores), "%v", tt.scores)
	}
}

func TestRandomGames(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	players := []string{"a", "b", "c"}

	for _, size := range [][2]int{{1, 1}, {1, 3}, {3, 1}, {2, 5}, {4, 4}, {6, 3}} {
		g, err := NewGame(players, size[0], size[1])
		require.NoError(t, err)
		grid := g.Grid()

		lines := grid.Lines()
		r.Shuffle(len(lines), func(i, j int) { lines[i], lines[j] = lines[j], lines[i] })

		for i, l := range lines {
			require.False(t, g.IsFinished())
			before := g.CurrentPlayerIndex()
			a, b := grid.LinePoints(l)
			if r.Intn(2) == 0 {
				a, b = b, a
			}

			res, err := g.ApplyMove(g.CurrentPlayer(), a, b)
			require.NoError(t, err)
			assert.Equal(t, i+1, g.LinesDrawn())
			assert.Equal(t, g.LinesDrawn(), g.Board().DrawnCount())
			assert.Equal(t, i == len(lines)-1, res.Finished)

			switch {
			case res.Finished:
			case len(res.CompletedBoxes) > 0:
				assert.Equal(t, before, g.CurrentPlayerIndex())
			default:
				assert.Equal(t, (before+1)%len(players), g.CurrentPlayerIndex())
			}

			for _, box := range res.CompletedBoxes {
				owner, ok := g.Board().Box(box).Owner()
				assert.True(t, ok)
				assert.Equal(t, before, owner)
			}

			_, err = g.ApplyMove(g.CurrentPlayer(), a, b)
			require.Error(t, err)
		}

		require.True(t, g.IsFinished())
		sum := 0
		for _, s := range g.Scores() {
			sum += s
		}
		assert.Equal(t, grid.BoxesCount(), sum)
		for i := 0; i < grid.BoxesCount(); i++ {
			assert.True(t, g.Board().Box(i).Completed())
		}
	}
}
