package game

// Rank is a piece rank. Kittens graduate into cats; cats never leave the
// game except by being booped off the board.
type Rank uint8

const (
	Kitten Rank = iota
	Cat

	NumRanks = 2
)

func (r Rank) String() string {
	switch r {
	case Kitten:
		return "kitten"
	case Cat:
		return "cat"
	default:
		return "unknown"
	}
}

// Color identifies a player. NoColor doubles as "no winner yet" and as the
// owner of an empty board cell.
type Color uint8

const (
	NoColor Color = iota
	Orange
	Gray
)

func (c Color) String() string {
	switch c {
	case Orange:
		return "orange"
	case Gray:
		return "gray"
	default:
		return "none"
	}
}

// Opponent returns the other player's color.
func (c Color) Opponent() Color {
	switch c {
	case Orange:
		return Gray
	case Gray:
		return Orange
	default:
		return NoColor
	}
}

// Piece is an immutable piece value. The zero Piece marks an empty cell.
type Piece struct {
	Rank  Rank
	Color Color
}

// Empty reports whether this is the no-piece value.
func (p Piece) Empty() bool {
	return p.Color == NoColor
}

// CanBoop reports whether p pushes other when placed next to it. Kittens
// cannot push cats; every other pairing pushes regardless of color.
func (p Piece) CanBoop(other Piece) bool {
	if p.Rank == Kitten && other.Rank == Cat {
		return false
	}
	return true
}

func (p Piece) String() string {
	if p.Empty() {
		return "."
	}
	prefix := "O"
	if p.Color == Gray {
		prefix = "G"
	}
	suffix := "k"
	if p.Rank == Cat {
		suffix = "C"
	}
	return prefix + suffix
}
