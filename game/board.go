package game

import (
	"fmt"
	"strings"
)

// BoardSize is the edge length of the square board.
const BoardSize = 6

// Position is a board coordinate. Row 0 is the top row.
type Position struct {
	Row, Col int
}

// neighborDirections lists the 8 Chebyshev-distance-1 offsets in the fixed
// order push resolution walks them.
var neighborDirections = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a value type; copying a Board copies the whole grid.
type Board struct {
	cells [BoardSize][BoardSize]Piece
}

// InBounds reports whether pos is on the board.
func (b *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < BoardSize && pos.Col >= 0 && pos.Col < BoardSize
}

// Empty reports whether pos is on the board and holds no piece.
func (b *Board) Empty(pos Position) bool {
	return b.InBounds(pos) && b.cells[pos.Row][pos.Col].Empty()
}

// PieceAt returns the piece at pos, or the empty Piece for empty or
// out-of-bounds positions.
func (b *Board) PieceAt(pos Position) Piece {
	if !b.InBounds(pos) {
		return Piece{}
	}
	return b.cells[pos.Row][pos.Col]
}

// Place puts a piece on an empty cell. It returns false if the cell is
// occupied and panics on an out-of-bounds write, which is always a
// programming error.
func (b *Board) Place(pos Position, piece Piece) bool {
	if !b.InBounds(pos) {
		panic(fmt.Sprintf("place out of bounds: %v", pos))
	}
	if !b.cells[pos.Row][pos.Col].Empty() {
		return false
	}
	b.cells[pos.Row][pos.Col] = piece
	return true
}

// Remove clears pos and returns the piece that was there.
func (b *Board) Remove(pos Position) Piece {
	if !b.InBounds(pos) {
		panic(fmt.Sprintf("remove out of bounds: %v", pos))
	}
	piece := b.cells[pos.Row][pos.Col]
	b.cells[pos.Row][pos.Col] = Piece{}
	return piece
}

// Move relocates the piece at from to the empty cell at to. It returns
// false if from is empty or to is occupied.
func (b *Board) Move(from, to Position) bool {
	if b.Empty(from) || !b.Empty(to) {
		return false
	}
	b.cells[to.Row][to.Col] = b.cells[from.Row][from.Col]
	b.cells[from.Row][from.Col] = Piece{}
	return true
}

// Neighbors returns the up-to-8 adjacent positions clipped to the board,
// in the fixed scan order.
func (b *Board) Neighbors(pos Position) []Position {
	neighbors := make([]Position, 0, 8)
	for _, d := range neighborDirections {
		n := Position{pos.Row + d.Row, pos.Col + d.Col}
		if b.InBounds(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// CountColor returns the number of pieces of the given color on the board.
func (b *Board) CountColor(c Color) int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.cells[row][col].Color == c {
				count++
			}
		}
	}
	return count
}

// CountRank returns the number of pieces of the given color and rank.
func (b *Board) CountRank(c Color, r Rank) int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.cells[row][col]
			if p.Color == c && p.Rank == r {
				count++
			}
		}
	}
	return count
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < BoardSize; col++ {
		fmt.Fprintf(&sb, "%d  ", col)
	}
	sb.WriteString("\n")
	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < BoardSize; col++ {
			p := b.cells[row][col]
			if p.Empty() {
				sb.WriteString(".  ")
			} else {
				sb.WriteString(p.String() + " ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
