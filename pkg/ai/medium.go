package ai

import (
	"math/rand"

	"github.com/IlikeChooros/go-tictac/pkg/game"
)

// Medium strategy: one ply of foresight in each direction.
//
//  1. play the first move (in enumeration order) that wins the game
//  2. else occupy the first cell the opponent would win with
//  3. else fall back to a random legal move
func lookaheadMove(pos game.Position, rng *rand.Rand) (game.Move, error) {
	moves := pos.LegalMoves()
	if moves.Size() == 0 {
		return game.MoveNone, ErrNoMoves
	}

	us := pos.Turn()
	for _, move := range moves.Slice() {
		if pos.IsWinningMove(move, us) {
			return move, nil
		}
	}

	them := us.Other()
	for _, move := range moves.Slice() {
		if pos.IsWinningMove(move, them) {
			return move, nil
		}
	}

	return moves.Slice()[rng.Intn(moves.Size())], nil
}
