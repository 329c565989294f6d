package mcts

import (
	"math"
	"time"
)

// Exploration parameter used in the UCB1 formula, higher values
// increase exploration. The theoretical value is sqrt(2); tune it per
// problem.
const DefaultExploration float64 = math.Sqrt2

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set a custom seed generator for the engine's random number
// generators, by default current time in nanoseconds. Tests use this
// to make searches reproducible.
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
