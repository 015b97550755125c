package game

// StateHash identifies a game position for debugging and tree bookkeeping.
type StateHash uint64

// State is the contract the searcher plays against. A State is immutable:
// Play always returns a new copy and never touches the receiver.
type State interface {
	// Player returns the color to move.
	Player() Color
	// Winner returns the winning color, or NoColor while the game is live.
	Winner() Color
	// GameOver reports whether a winner exists, the player to move has an
	// empty pool, or the board is full.
	GameOver() bool
	// LegalMoves returns every playable move in a fixed deterministic order.
	LegalMoves() []Move
	// Play applies a legal move and returns the resulting state. Passing an
	// illegal move is a programming error and panics.
	Play(Move) State
	Hash() StateHash
}

// Evaluate maps a state to a prior distribution over the encoded action
// space (see EncodeAction) and a scalar value in [-1, 1], both from the
// perspective of the player to move. The neural evaluator sits behind this
// boundary; the functions in eval.go are lightweight stand-ins.
type Evaluate func(State) ([]float64, float64)
