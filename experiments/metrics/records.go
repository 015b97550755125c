package metrics

import "time"

// GameRecord is one finished game in an experiment.
type GameRecord struct {
	ID       int
	Agent1   int // AgentConfig.ID, plays orange
	Agent2   int // AgentConfig.ID, plays gray
	Winner   string
	Moves    int
	Duration time.Duration
}
