package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"boop/game"
)

// visitPolicy converts the root children's visit counts into a probability
// distribution over the encoded action space. Temperature 0 splits the
// mass equally among the children tied for most visits; temperature > 0
// weighs children by visits^(1/temperature). It returns nil when the root
// has no children.
func visitPolicy(t *tree, temperature float64) []float64 {
	root := t.root()
	if len(root.children) == 0 {
		return nil
	}

	probs := make([]float64, game.ActionSpace)

	if temperature == 0 {
		maxVisits, ties := 0, 0
		for _, ch := range root.children {
			v := t.at(ch).visits
			if v > maxVisits {
				maxVisits, ties = v, 1
			} else if v == maxVisits {
				ties++
			}
		}
		for _, ch := range root.children {
			child := t.at(ch)
			if child.visits == maxVisits {
				probs[game.EncodeAction(child.move)] = 1 / float64(ties)
			}
		}
		return probs
	}

	sum := 0.0
	for _, ch := range root.children {
		child := t.at(ch)
		w := math.Pow(float64(child.visits), 1/temperature)
		probs[game.EncodeAction(child.move)] = w
		sum += w
	}
	if sum > 0 {
		for i := range probs {
			probs[i] /= sum
		}
	}
	return probs
}

// uniformLegal spreads the distribution evenly over the legal actions of
// the state itself, for the degenerate case of a search that expanded
// nothing.
func uniformLegal(state game.State) []float64 {
	probs := make([]float64, game.ActionSpace)
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return probs
	}
	p := 1 / float64(len(moves))
	for _, move := range moves {
		probs[game.EncodeAction(move)] = p
	}
	return probs
}

// argmax returns the index of the largest probability; the first on ties.
func argmax(probs []float64) int {
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return best
}

// sample draws an index from the distribution. A degenerate all-zero
// distribution yields the last index, which the caller's legality
// fallback absorbs.
func sample(probs []float64, rng *rand.Rand) int {
	r := rng.Float64()
	acc := 0.0
	for i, p := range probs {
		acc += p
		if r < acc {
			return i
		}
	}
	return len(probs) - 1
}
