package mcts

// Result of a rollout, in [0, 1] from the perspective of the side to
// move at the leaf: 0 a loss, 0.5 a draw, 1 a win
type Result float64

type MoveLike comparable
type BestChildPolicy int
type SeedGeneratorFnType func() int64

const (
	// Choose the most visited child, the go-to method for MCTS
	// (robust child): sample confidence over raw win rate
	BestChildMostVisits BestChildPolicy = iota

	// Experimental: choose the child with the best average outcome
	BestChildWinRate
)
