package game

// Stand-in evaluators for the neural policy/value network. They keep the
// searcher exercisable without a trained model and serve as baselines.

// EvaluateUniform returns flat priors over the action space and a neutral
// value. Search guided by it degenerates to visit-count exploration.
func EvaluateUniform(s State) ([]float64, float64) {
	priors := make([]float64, ActionSpace)
	for i := range priors {
		priors[i] = 1.0 / ActionSpace
	}
	return priors, 0
}

// EvaluateMaterial returns flat priors and a material score in [-1, 1]
// from the perspective of the player to move: cats on board count triple,
// kittens single, plus a small bonus per completed-line threat.
func EvaluateMaterial(s State) ([]float64, float64) {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}

	priors, _ := EvaluateUniform(s)

	me := gs.Player()
	opp := me.Opponent()
	score := materialScore(gs, me) - materialScore(gs, opp)

	// 8 cats at weight 3 plus line bonuses bounds the raw score.
	const maxScore = 3*InitialCats + 8
	value := score / maxScore
	if value > 1 {
		value = 1
	} else if value < -1 {
		value = -1
	}
	return priors, value
}

func materialScore(gs *GameState, c Color) float64 {
	cats := float64(gs.Board.CountRank(c, Cat))
	kittens := float64(gs.Board.CountRank(c, Kitten))
	lines := float64(gs.LineCount(c))
	return 3*cats + kittens + 2*lines
}
