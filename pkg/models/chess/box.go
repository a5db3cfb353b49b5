package chess

const BoxEdges = 4

// Box counts its drawn edges. The player who draws the fourth edge owns it.
type Box struct {
	FillCount int
	owner     int
	owned     bool
}

func (b Box) Completed() bool { return b.FillCount == BoxEdges }

func (b Box) Owner() (player int, ok bool) {
	return b.owner, b.owned
}

// fill adds one edge and reports whether that edge completed the box.
// Completed boxes are frozen.
func (b *Box) fill(player int) bool {
	if b.Completed() {
		return false
	}

	b.FillCount++
	if b.Completed() {
		b.owner = player
		b.owned = true
		return true
	}
	return false
}
