package chess

import "github.com/pkg/errors"

// Board owns the drawn lines and the boxes. DrawLine is its only mutator.
type Board struct {
	Grid
	horizontal []bool
	vertical   []bool
	boxes      []Box
	drawn      int
}

func NewBoard(grid Grid) *Board {
	return &Board{
		Grid:       grid,
		horizontal: make([]bool, grid.HorizontalLinesCount()),
		vertical:   make([]bool, grid.VerticalLinesCount()),
		boxes:      make([]Box, grid.BoxesCount()),
	}
}

func (b *Board) slots(o Orientation) []bool {
	if o == Horizontal {
		return b.horizontal
	}
	return b.vertical
}

// DrawLine draws the line between points x and y for player and returns the
// boxes it completed. On error nothing is changed.
func (b *Board) DrawLine(x, y, player int) (completed []int, err error) {
	line, err := b.LineBetween(x, y)
	if err != nil {
		return nil, err
	}

	slots := b.slots(line.Orientation)
	if slots[line.Slot] {
		if x > y {
			x, y = y, x
		}
		return nil, errors.Wrapf(ErrAlreadyDrawn, "%d to %d", x, y)
	}

	slots[line.Slot] = true
	b.drawn++
	for _, i := range b.AdjacentBoxes(line) {
		if b.boxes[i].fill(player) {
			completed = append(completed, i)
		}
	}
	return completed, nil
}

func (b *Board) Drawn(l Line) bool { return b.slots(l.Orientation)[l.Slot] }

func (b *Board) HorizontalDrawn(slot int) bool { return b.horizontal[slot] }

func (b *Board) VerticalDrawn(slot int) bool { return b.vertical[slot] }

// DrawnCount is the number of drawn lines across both arrays.
func (b *Board) DrawnCount() int { return b.drawn }

func (b *Board) Box(i int) Box { return b.boxes[i] }

// FreeLines lists the lines that are still undrawn.
func (b *Board) FreeLines() (lines []Line) {
	for _, l := range b.Lines() {
		if !b.Drawn(l) {
			lines = append(lines, l)
		}
	}
	return
}
