package game

// pushDirection returns the unit direction pointing from the placed piece
// through the neighbor, each axis clamped to -1, 0 or 1.
func pushDirection(from, to Position) Position {
	return Position{Row: clamp(to.Row - from.Row), Col: clamp(to.Col - from.Col)}
}

func clamp(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// braced reports whether the piece at pos is backed by another piece one
// step further along the push direction (the line-of-two rule).
func braced(b *Board, pos, dir Position) bool {
	behind := Position{pos.Row + dir.Row, pos.Col + dir.Col}
	return b.InBounds(behind) && !b.Empty(behind)
}

// resolveBoop runs one wave of pushes from a freshly placed piece. Each
// neighbor is considered exactly once, in the fixed neighbor scan order;
// pieces that land next to other pieces do not trigger further pushes.
// Pieces knocked off the board are removed and returned to the caller.
func resolveBoop(b *Board, placed Position) []Piece {
	pusher := b.PieceAt(placed)
	if pusher.Empty() {
		return nil
	}

	var boopedOff []Piece
	for _, npos := range b.Neighbors(placed) {
		target := b.PieceAt(npos)
		if target.Empty() {
			continue
		}
		if !pusher.CanBoop(target) {
			continue
		}

		dir := pushDirection(placed, npos)
		if braced(b, npos, dir) {
			continue
		}

		dest := Position{npos.Row + dir.Row, npos.Col + dir.Col}
		switch {
		case !b.InBounds(dest):
			boopedOff = append(boopedOff, b.Remove(npos))
		case b.Empty(dest):
			b.Move(npos, dest)
		}
		// Occupied destination: the target stays put. Unreachable in
		// practice because an occupied dest means the target was braced.
	}
	return boopedOff
}
