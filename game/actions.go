package game

const (
	boardCells = BoardSize * BoardSize

	// ActionSpace is the size of the dense action encoding shared with the
	// evaluator: kitten placements in 0..35 (row-major), cat placements in
	// 36..71, and a reserved block in 72..107 that decodes to no move.
	ActionSpace = 3 * boardCells
)

// Move places one piece of the given rank on an empty cell.
type Move struct {
	Row, Col int
	Rank     Rank
}

// Pos returns the move's board position.
func (m Move) Pos() Position {
	return Position{m.Row, m.Col}
}

// EncodeAction maps a move to its dense action index.
func EncodeAction(m Move) int {
	index := m.Row*BoardSize + m.Col
	if m.Rank == Cat {
		index += boardCells
	}
	return index
}

// DecodeAction inverts EncodeAction. It returns false for the reserved
// block and for indices outside the action space.
func DecodeAction(index int) (Move, bool) {
	if index < 0 || index >= 2*boardCells {
		return Move{}, false
	}
	rank := Kitten
	if index >= boardCells {
		rank = Cat
		index -= boardCells
	}
	return Move{Row: index / BoardSize, Col: index % BoardSize, Rank: rank}, true
}
