package chess

import (
	"fmt"

	"github.com/pkg/errors"
)

type Orientation int8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	}
	return ""
}

// Line addresses one slot of the horizontal or vertical line array.
type Line struct {
	Orientation
	Slot int
}

func (l Line) String() string {
	return fmt.Sprintf("%s[%d]", l.Orientation, l.Slot)
}

// HorizontalLineSlot packs the line whose left endpoint is p. The last point
// of every row starts no line, so one slot is skipped per completed row.
func (g Grid) HorizontalLineSlot(p int) int {
	return p - p/g.stride()
}

// VerticalLineSlot is the index of the line whose top endpoint is p.
func (g Grid) VerticalLineSlot(p int) int {
	return p
}

func (g Grid) HorizontalLinePoints(slot int) (a, b int) {
	a = g.CoordsToPoint(slot/g.Width, slot%g.Width)
	return a, a + 1
}

func (g Grid) VerticalLinePoints(slot int) (a, b int) {
	return slot, slot + g.stride()
}

// LinePoints returns the ordered endpoints of l.
func (g Grid) LinePoints(l Line) (a, b int) {
	if l.Orientation == Horizontal {
		return g.HorizontalLinePoints(l.Slot)
	}
	return g.VerticalLinePoints(l.Slot)
}

// BoxesAdjacentToHorizontalLine returns the box above and the box below,
// skipping whichever falls outside the board.
func (g Grid) BoxesAdjacentToHorizontalLine(slot int) (boxes []int) {
	row, col := slot/g.Width, slot%g.Width
	if row > 0 {
		boxes = append(boxes, g.BoxIndex(row-1, col))
	}
	if row < g.Height {
		boxes = append(boxes, g.BoxIndex(row, col))
	}
	return
}

// BoxesAdjacentToVerticalLine returns the box left and the box right of the
// line whose top endpoint is p.
func (g Grid) BoxesAdjacentToVerticalLine(p int) (boxes []int) {
	row, col := g.PointToCoords(p)
	if col > 0 {
		boxes = append(boxes, g.BoxIndex(row, col-1))
	}
	if col < g.Width {
		boxes = append(boxes, g.BoxIndex(row, col))
	}
	return
}

func (g Grid) AdjacentBoxes(l Line) []int {
	if l.Orientation == Horizontal {
		return g.BoxesAdjacentToHorizontalLine(l.Slot)
	}
	return g.BoxesAdjacentToVerticalLine(l.Slot)
}

// LineBetween classifies the pair a, b as a line of the grid.
func (g Grid) LineBetween(a, b int) (Line, error) {
	if a > b {
		a, b = b, a
	}
	for _, p := range [...]int{a, b} {
		if !g.Contains(p) {
			return Line{}, errors.Wrapf(ErrOutOfBounds, "position %d", p)
		}
	}

	switch {
	case g.IsHorizontalPair(a, b):
		return Line{Orientation: Horizontal, Slot: g.HorizontalLineSlot(a)}, nil
	case g.IsVerticalPair(a, b):
		return Line{Orientation: Vertical, Slot: g.VerticalLineSlot(a)}, nil
	}
	return Line{}, errors.Wrapf(ErrInvalidLine, "%d to %d", a, b)
}

// Lines lists every line slot, horizontal slots first.
func (g Grid) Lines() (lines []Line) {
	for i := 0; i < g.HorizontalLinesCount(); i++ {
		lines = append(lines, Line{Orientation: Horizontal, Slot: i})
	}
	for i := 0; i < g.VerticalLinesCount(); i++ {
		lines = append(lines, Line{Orientation: Vertical, Slot: i})
	}
	return
}
