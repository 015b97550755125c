package game

import (
	"github.com/OneOfOne/xxhash"
)

// GameState is the complete game position: board, both players, whose turn
// it is and the winner once decided. It is a flat fixed-size value, so
// cloning it for a hypothetical search branch is a plain copy.
type GameState struct {
	Board     Board
	Players   [2]Player
	Current   int // index into Players
	Won       Color
	MoveCount int
}

// NewGameState returns the initial position with orange to move.
func NewGameState() *GameState {
	return &GameState{
		Players: [2]Player{NewPlayer(Orange), NewPlayer(Gray)},
	}
}

// CurrentPlayer returns the player to move.
func (gs *GameState) CurrentPlayer() *Player {
	return &gs.Players[gs.Current]
}

// playerFor returns the player owning the given color.
func (gs *GameState) playerFor(c Color) *Player {
	if gs.Players[0].Color == c {
		return &gs.Players[0]
	}
	return &gs.Players[1]
}

// Clone returns an independent copy of the state.
func (gs *GameState) Clone() *GameState {
	clone := *gs
	return &clone
}

// Player returns the color to move.
func (gs *GameState) Player() Color {
	return gs.Players[gs.Current].Color
}

// Winner returns the winning color, or NoColor while the game is live.
func (gs *GameState) Winner() Color {
	return gs.Won
}

// GameOver reports whether the game has ended: a recorded winner, an empty
// pool for the player to move, or a full board.
func (gs *GameState) GameOver() bool {
	if gs.Won != NoColor {
		return true
	}
	if !gs.Players[gs.Current].HasPieces() {
		return true
	}
	return gs.emptyCells() == 0
}

func (gs *GameState) emptyCells() int {
	return BoardSize*BoardSize - gs.Board.CountColor(Orange) - gs.Board.CountColor(Gray)
}

// LegalMoves enumerates the player to move's placements: every empty cell,
// once per rank still held in the pool, kittens before cats and row-major
// within each rank. Terminal states have no legal moves.
func (gs *GameState) LegalMoves() []Move {
	if gs.Won != NoColor {
		return nil
	}
	player := &gs.Players[gs.Current]

	var moves []Move
	for r := Rank(0); r < NumRanks; r++ {
		if player.Pool[r] == 0 {
			continue
		}
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				if gs.Board.Empty(Position{row, col}) {
					moves = append(moves, Move{Row: row, Col: col, Rank: r})
				}
			}
		}
	}
	return moves
}

// Play returns the state after the given move. The receiver is untouched.
// Illegal moves panic: search and agents only produce moves from
// LegalMoves, so an illegal move here is a broken invariant.
func (gs *GameState) Play(m Move) State {
	next := gs.Clone()
	if !next.apply(m) {
		panic("illegal move played on game state")
	}
	return next
}

// apply executes one full ply in place: place the piece, resolve pushes,
// graduate at most one line, check for a win and switch the turn. It
// returns false (leaving the state unchanged) for an occupied cell or an
// empty pool.
func (gs *GameState) apply(m Move) bool {
	pos := m.Pos()
	if !gs.Board.Empty(pos) {
		return false
	}
	player := gs.CurrentPlayer()
	if !player.TakeFromPool(m.Rank) {
		return false
	}

	gs.Board.Place(pos, Piece{Rank: m.Rank, Color: player.Color})
	gs.MoveCount++

	// Booped-off pieces go back to their own owner's pool, whichever
	// color that is.
	for _, piece := range resolveBoop(&gs.Board, pos) {
		gs.playerFor(piece.Color).ReturnToPool(piece.Rank)
	}

	// At most one line graduates per ply: the first kitten-bearing line
	// in scan order. All-cat lines are left alone for the win check.
	for _, l := range findLines(&gs.Board, player.Color) {
		if lineHasKitten(&gs.Board, l) {
			graduateLine(&gs.Board, player, l)
			break
		}
	}

	if checkWin(&gs.Board, player.Color) {
		gs.Won = player.Color
		return true // no turn switch on a win
	}

	gs.Current = 1 - gs.Current
	return true
}

// Hash returns an xxhash of the full position.
func (gs *GameState) Hash() StateHash {
	buf := make([]byte, 0, BoardSize*BoardSize*2+12)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := gs.Board.cells[row][col]
			buf = append(buf, byte(p.Rank), byte(p.Color))
		}
	}
	for i := range gs.Players {
		p := &gs.Players[i]
		buf = append(buf,
			byte(p.Pool[Kitten]), byte(p.Pool[Cat]),
			byte(p.Reserve[Kitten]), byte(p.Reserve[Cat]))
	}
	buf = append(buf, byte(gs.Current), byte(gs.Won))
	return StateHash(xxhash.Checksum64(buf))
}

// CatsOnBoard counts the given player's cats on the board.
func (gs *GameState) CatsOnBoard(c Color) int {
	return gs.Board.CountRank(c, Cat)
}

// LineCount returns how many three-in-a-row runs the player currently has.
func (gs *GameState) LineCount(c Color) int {
	return len(findLines(&gs.Board, c))
}
