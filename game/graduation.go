package game

// line is a run of exactly three board positions.
type line [3]Position

// lineDirections are the four scan directions: horizontal, vertical,
// down-right diagonal, down-left diagonal.
var lineDirections = [4]Position{
	{0, 1}, {1, 0}, {1, 1}, {1, -1},
}

// findLines returns every run of three pieces of the given color, any rank
// mix, in a fixed order: direction by direction, row-major within each
// direction. The first eligible line in this order is the one that
// graduates, which makes the tie-break deterministic.
func findLines(b *Board, c Color) []line {
	var lines []line
	for _, dir := range lineDirections {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				l := line{
					{row, col},
					{row + dir.Row, col + dir.Col},
					{row + 2*dir.Row, col + 2*dir.Col},
				}
				if !b.InBounds(l[2]) || !b.InBounds(l[0]) {
					continue
				}
				if lineOfColor(b, l, c) {
					lines = append(lines, l)
				}
			}
		}
	}
	return lines
}

func lineOfColor(b *Board, l line, c Color) bool {
	for _, pos := range l {
		if b.PieceAt(pos).Color != c {
			return false
		}
	}
	return true
}

// lineHasKitten reports whether the run contains at least one kitten, the
// graduation-eligibility condition. All-cat runs are wins, not graduations.
func lineHasKitten(b *Board, l line) bool {
	for _, pos := range l {
		if p := b.PieceAt(pos); !p.Empty() && p.Rank == Kitten {
			return true
		}
	}
	return false
}

func lineAllCats(b *Board, l line) bool {
	for _, pos := range l {
		if p := b.PieceAt(pos); p.Empty() || p.Rank != Cat {
			return false
		}
	}
	return true
}

// graduateLine consumes a completed run for the given player: cats return
// to the pool, kittens retire from the game permanently, and three reserve
// pieces unlock if the reserve can cover them.
func graduateLine(b *Board, player *Player, l line) {
	for _, pos := range l {
		piece := b.Remove(pos)
		if piece.Empty() {
			continue
		}
		if piece.Rank == Cat {
			player.ReturnToPool(Cat)
		}
		// Kittens leave the game: not returned anywhere.
	}
	player.Graduate()
}
