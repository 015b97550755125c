package agent

import (
	"math"

	"golang.org/x/exp/rand"

	"boop/game"
)

type greedyAgent struct {
	rng *rand.Rand
}

// NewGreedyAgent returns a one-ply lookahead baseline: it takes immediate
// wins, avoids handing the opponent a win, and otherwise prefers cats,
// central squares and line threats. Ties break randomly.
func NewGreedyAgent(seed uint64) Agent {
	return greedyAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a greedyAgent) FindMove(state game.State) game.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}
	}

	bestScore := math.Inf(-1)
	var best []game.Move
	for _, move := range moves {
		score := scoreMove(state, move)
		if score > bestScore {
			bestScore = score
			best = best[:0]
		}
		if score == bestScore {
			best = append(best, move)
		}
	}
	return best[a.rng.Intn(len(best))]
}

func scoreMove(state game.State, move game.Move) float64 {
	me := state.Player()
	next, ok := state.Play(move).(*game.GameState)
	if !ok {
		panic("unexpected state type")
	}

	if next.Winner() == me {
		return 10000
	}

	score := 0.0
	if !next.GameOver() && opponentCanWin(next) {
		score -= 5000
	}

	if move.Rank == game.Cat {
		score += 100
	}

	// Central squares control more of the board.
	centerDistance := math.Abs(float64(move.Row)-2.5) + math.Abs(float64(move.Col)-2.5)
	score += (7 - centerDistance) * 10

	score += float64(next.LineCount(me)) * 200
	score += float64(next.CatsOnBoard(me)) * 15

	return score
}

// opponentCanWin reports whether the player to move at state has an
// immediate winning reply.
func opponentCanWin(state *game.GameState) bool {
	opponent := state.Player()
	for _, move := range state.LegalMoves() {
		if state.Play(move).Winner() == opponent {
			return true
		}
	}
	return false
}
