package chess

import "github.com/pkg/errors"

type State int8

const (
	InProgress State = iota
	Finished
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Finished:
		return "Finished"
	}
	return ""
}

const noWinner = -1

// Game wraps a Board with the player order, scores and turn rule. A Game is
// not safe for concurrent use; its owner serializes moves.
type Game struct {
	board      *Board
	players    []string
	current    int
	scores     []int
	linesDrawn int
	state      State
	winner     int
}

type MoveResult struct {
	CompletedBoxes []int
	TurnAdvanced   bool
	Finished       bool
	// Winner is the winning player id, empty while the game runs or on a tie.
	Winner string
	Tie    bool
}

func NewGame(players []string, width, height int) (*Game, error) {
	if len(players) < 2 {
		return nil, errors.Wrapf(ErrTooFewPlayers, "got %d", len(players))
	}

	seen := make(map[string]struct{}, len(players))
	for _, p := range players {
		if _, c := seen[p]; c {
			return nil, errors.Wrapf(ErrDuplicatePlayer, "%q", p)
		}
		seen[p] = struct{}{}
	}

	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	return &Game{
		board:   NewBoard(grid),
		players: append([]string(nil), players...),
		scores:  make([]int, len(players)),
		winner:  noWinner,
	}, nil
}

// ApplyMove draws the line between points a and b for player. A move that
// completes a box keeps the turn with the same player.
func (g *Game) ApplyMove(player string, a, b int) (MoveResult, error) {
	if g.state == Finished {
		return MoveResult{}, ErrGameFinished
	}

	if g.players[g.current] != player {
		return MoveResult{}, errors.Wrapf(ErrNotYourTurn, "%q moved, %q is up", player, g.players[g.current])
	}

	completed, err := g.board.DrawLine(a, b, g.current)
	if err != nil {
		return MoveResult{}, err
	}

	g.linesDrawn++
	g.scores[g.current] += len(completed)
	result := MoveResult{CompletedBoxes: completed}

	if g.linesDrawn == g.board.LinesCount() {
		g.state = Finished
		g.winner = decideWinner(g.scores)
		result.Finished = true
		if w, ok := g.Winner(); ok {
			result.Winner = g.players[w]
		} else {
			result.Tie = true
		}
		return result, nil
	}

	if len(completed) == 0 {
		g.current = (g.current + 1) % len(g.players)
		result.TurnAdvanced = true
	}
	return result, nil
}

// decideWinner returns the index of the single best score, or noWinner when
// the best score is shared.
func decideWinner(scores []int) int {
	most := 0
	winner := noWinner
	for i, s := range scores {
		if s > most {
			most = s
			winner = i
		} else if s == most {
			winner = noWinner
		}
	}
	return winner
}

func (g *Game) Board() *Board { return g.board }

func (g *Game) Grid() Grid { return g.board.Grid }

func (g *Game) Players() []string { return append([]string(nil), g.players...) }

func (g *Game) CurrentPlayer() string { return g.players[g.current] }

func (g *Game) CurrentPlayerIndex() int { return g.current }

func (g *Game) Scores() []int { return append([]int(nil), g.scores...) }

func (g *Game) LinesDrawn() int { return g.linesDrawn }

func (g *Game) State() State { return g.state }

func (g *Game) IsFinished() bool { return g.state == Finished }

// Winner reports the winning player index once the game is finished.
func (g *Game) Winner() (int, bool) {
	return g.winner, g.state == Finished && g.winner != noWinner
}

func (g *Game) IsTie() bool {
	return g.state == Finished && g.winner == noWinner
}
