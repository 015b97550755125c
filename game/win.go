package game

// checkWin reports whether the given player has won: either a run of three
// of their cats, or all eight of their cats simultaneously on the board.
// Graduation never consumes an all-cat run, so a winning line survives the
// graduation pass that precedes this check.
func checkWin(b *Board, c Color) bool {
	for _, l := range findLines(b, c) {
		if lineAllCats(b, l) {
			return true
		}
	}
	return b.CountRank(c, Cat) == InitialCats
}
