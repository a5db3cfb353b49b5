// Package render draws a game as text: a compact fixed-width grid, or a rich
// markdown grid whose undrawn lines carry a caller-built link.
package render

import (
	"fmt"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/notation"
)

type Style int8

const (
	Compact Style = iota
	Rich
)

func (s Style) String() string {
	switch s {
	case Compact:
		return "Compact"
	case Rich:
		return "Rich"
	}
	return ""
}

const (
	Dot           = "·"
	HoriLine      = " "
	ThickHoriLine = "═"
	VertLine      = " "
	ThickVertLine = "║"
	ZWSP          = "\u200b"
	Fence         = "```"
)

// LinkFunc builds the target of an undrawn line between points a and b.
type LinkFunc func(a, b int) string

func PointsLink(a, b int) string { return fmt.Sprintf("%d/%d", a, b) }

type Options struct {
	Style Style
	// Icons holds one rune per player index; owned boxes show their owner's.
	Icons []rune
	// Link is used by Rich only. PointsLink when nil.
	Link LinkFunc
}

type renderer struct {
	chess.Grid
	board *chess.Board
	Options
}

// Render never mutates g.
func Render(g *chess.Game, opts Options) string {
	if opts.Link == nil {
		opts.Link = PointsLink
	}
	r := renderer{Grid: g.Grid(), board: g.Board(), Options: opts}

	var output []string
	fancy := opts.Style == Rich
	if !fancy {
		output = append(output, Fence, "   "+r.header())
	}
	for i := 0; i < r.Height; i++ {
		output = append(output, r.horiLine(i), r.vertLine(i))
	}
	output = append(output, r.horiLine(r.Height))
	if !fancy {
		output = append(output, Fence)
	}
	return strings.Join(output, "\n")
}

func (r renderer) header() string {
	letters := make([]string, r.Width+1)
	for i := range letters {
		letters[i] = notation.ColumnLetter(i)
	}
	return strings.Join(letters, " ")
}

// separate keeps adjacent code spans from merging into one delimiter.
func separate(s string) string {
	return strings.ReplaceAll(s, "``", "`"+ZWSP+"`")
}

func (r renderer) horiLine(row int) string {
	var builder strings.Builder
	sep := "*"
	if r.Style == Rich {
		sep = "`" + Dot + "`"
	} else {
		builder.WriteString(fmt.Sprintf("%2d ", row+1))
	}

	for col := 0; col < r.Width; col++ {
		slot := row*r.Width + col
		builder.WriteString(sep)
		drawn := r.board.HorizontalDrawn(slot)
		switch {
		case r.Style != Rich && drawn:
			builder.WriteString("-")
		case r.Style != Rich:
			builder.WriteString(" ")
		case drawn:
			builder.WriteString("**`" + ThickHoriLine + "`**")
		default:
			a, b := r.HorizontalLinePoints(slot)
			builder.WriteString("[`" + HoriLine + "`](" + r.Link(a, b) + ")")
		}
	}
	builder.WriteString(sep)
	return separate(builder.String())
}

func (r renderer) vertLine(row int) string {
	var builder strings.Builder
	if r.Style != Rich {
		builder.WriteString("   ")
	}

	for col := 0; col <= r.Width; col++ {
		if col > 0 {
			builder.WriteString(r.boxCell(r.BoxIndex(row, col-1)))
		}

		p := r.CoordsToPoint(row, col)
		drawn := r.board.VerticalDrawn(r.VerticalLineSlot(p))
		switch {
		case r.Style != Rich && drawn:
			builder.WriteString("|")
		case r.Style != Rich:
			builder.WriteString(" ")
		case drawn:
			builder.WriteString("**`" + ThickVertLine + "`**")
		default:
			a, b := r.VerticalLinePoints(p)
			builder.WriteString("[`" + VertLine + "`](" + r.Link(a, b) + ")")
		}
	}
	return separate(builder.String())
}

func (r renderer) boxCell(i int) string {
	icon := " "
	if owner, ok := r.board.Box(i).Owner(); ok && owner < len(r.Icons) {
		icon = string(r.Icons[owner])
	}
	if r.Style == Rich {
		return "`" + icon + "`"
	}
	return icon
}
