// Package notation converts the column-letter/row-number coordinates players
// type in chat ("a1-b1") to and from lattice point indices.
package notation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/chess"
	"github.com/pkg/errors"
)

const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MaxColumns is the widest lattice that can be labelled.
const MaxColumns = len(Alphabet)

var (
	ErrBadNotation = errors.New("bad move notation")

	pointPattern = regexp.MustCompile(`(?i)^([a-z])([0-9]+)$`)
	movePattern  = regexp.MustCompile(`(?i)^([a-z][0-9]+)-([a-z][0-9]+)$`)
)

func ColumnLetter(col int) string {
	if col < 0 || col >= MaxColumns {
		return "?"
	}
	return Alphabet[col : col+1]
}

// Fits reports whether every column of g has a letter.
func Fits(g chess.Grid) bool {
	return g.Width+1 <= MaxColumns
}

func IsMove(s string) bool {
	return movePattern.MatchString(strings.TrimSpace(s))
}

// ParsePoint parses "b3" into a point index. Rows count from 1.
func ParsePoint(s string, g chess.Grid) (int, error) {
	m := pointPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, errors.Wrapf(ErrBadNotation, "%q", s)
	}

	col := strings.Index(Alphabet, strings.ToUpper(m[1]))
	row, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, errors.Wrapf(ErrBadNotation, "%q", s)
	}
	row--

	if col > g.Width || row < 0 || row > g.Height {
		return 0, errors.Wrapf(chess.ErrOutOfBounds, "%q", s)
	}
	return g.CoordsToPoint(row, col), nil
}

func ParseMove(s string, g chess.Grid) (a, b int, err error) {
	m := movePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, errors.Wrapf(ErrBadNotation, "%q", s)
	}

	if a, err = ParsePoint(m[1], g); err != nil {
		return 0, 0, err
	}
	if b, err = ParsePoint(m[2], g); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func FormatPoint(p int, g chess.Grid) string {
	row, col := g.PointToCoords(p)
	return fmt.Sprintf("%s%d", strings.ToLower(ColumnLetter(col)), row+1)
}

func FormatMove(a, b int, g chess.Grid) string {
	if a > b {
		a, b = b, a
	}
	return FormatPoint(a, g) + "-" + FormatPoint(b, g)
}
