package chess

import "github.com/pkg/errors"

// Grid is a board of Width x Height boxes. Its points form a
// (Width+1) x (Height+1) lattice numbered row by row.
type Grid struct {
	Width  int
	Height int
}

func NewGrid(width, height int) (Grid, error) {
	if width < 1 || height < 1 {
		return Grid{}, errors.Wrapf(ErrInvalidSize, "got %dx%d", width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

func (g Grid) stride() int { return g.Width + 1 }

func (g Grid) PointsCount() int { return (g.Width + 1) * (g.Height + 1) }

func (g Grid) HorizontalLinesCount() int { return g.Width * (g.Height + 1) }

func (g Grid) VerticalLinesCount() int { return g.Height * (g.Width + 1) }

// LinesCount is the number of line slots; a game ends once all are drawn.
func (g Grid) LinesCount() int { return g.HorizontalLinesCount() + g.VerticalLinesCount() }

func (g Grid) BoxesCount() int { return g.Width * g.Height }

func (g Grid) Contains(p int) bool { return p >= 0 && p < g.PointsCount() }

func (g Grid) PointToCoords(p int) (row, col int) {
	return p / g.stride(), p % g.stride()
}

func (g Grid) CoordsToPoint(row, col int) int {
	return row*g.stride() + col
}

func (g Grid) BoxIndex(row, col int) int {
	return row*g.Width + col
}

func (g Grid) IsHorizontalPair(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	ra, ca := g.PointToCoords(a)
	rb, cb := g.PointToCoords(b)
	return ra == rb && cb == ca+1
}

func (g Grid) IsVerticalPair(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	ra, ca := g.PointToCoords(a)
	rb, cb := g.PointToCoords(b)
	return ca == cb && rb == ra+1
}
