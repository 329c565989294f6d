package ai

import (
	"math/rand"

	"github.com/IlikeChooros/go-tictac/pkg/game"
)

// Weak strategy: a uniformly random legal move
func randomMove(pos game.Position, rng *rand.Rand) (game.Move, error) {
	moves := pos.LegalMoves()
	if moves.Size() == 0 {
		return game.MoveNone, ErrNoMoves
	}
	return moves.Slice()[rng.Intn(moves.Size())], nil
}
