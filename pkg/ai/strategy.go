// Package ai implements the three opponent strengths: Weak plays at
// random, Medium adds a one-ply win/block lookahead, Strong runs a
// Monte Carlo tree search.
package ai

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/IlikeChooros/go-tictac/pkg/game"
)

// Strength is a closed set of strategies dispatched by ChooseMove;
// there is deliberately no plugin surface here.
type Strength uint8

const (
	Weak Strength = iota
	Medium
	Strong
)

var (
	// Returned when a strategy is asked to move on a terminal position
	ErrNoMoves = errors.New("ai: no legal moves")

	// Returned when Strong is invoked without any search budget
	ErrNoBudget = errors.New("ai: search budget is zero, set Cycles or Movetime")
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	}
	return fmt.Sprintf("Strength(%d)", uint8(s))
}

// Parse a strength name, accepts "weak", "medium" and "strong"
func StrengthFromString(s string) (Strength, bool) {
	switch s {
	case "weak":
		return Weak, true
	case "medium":
		return Medium, true
	case "strong":
		return Strong, true
	}
	return Weak, false
}

// Config tunes the Strong strategy; Weak and Medium ignore it.
// At least one of Cycles and Movetime must be set for Strong.
type Config struct {
	// Number of search iterations
	Cycles uint32

	// Wall-clock budget, used instead of or on top of Cycles
	Movetime time.Duration

	// UCB1 exploration constant, mcts.DefaultExploration when zero
	Exploration float64
}

// DefaultConfig is the budget the CLIs use; the library itself has no
// silent default
func DefaultConfig() Config {
	return Config{Cycles: 10000}
}

// ChooseMove picks a move for the side to move on pos. The position is
// never mutated. rng drives every random decision; pass a seeded
// generator for reproducible play, or nil for a time-seeded one.
func ChooseMove(pos game.Position, strength Strength, cfg Config, rng *rand.Rand) (game.Move, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	switch strength {
	case Weak:
		return randomMove(pos, rng)
	case Medium:
		return lookaheadMove(pos, rng)
	case Strong:
		return searchMove(pos, cfg, rng)
	}
	return game.MoveNone, fmt.Errorf("ai: unknown strength %d", strength)
}
