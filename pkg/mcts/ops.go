package mcts

import "math/rand"

// GameOperations binds the engine to a concrete game. The
// implementation owns a working copy of the position; the engine keeps
// it in sync with the node currently visited via Traverse/BackTraverse.
type GameOperations[T MoveLike] interface {
	// Generate moves and add them as children of the given node,
	// always in the same order. Returns the number of children added.
	ExpandNode(parent *Node[T]) uint32

	// Make the move on the internal position
	Traverse(T)

	// Undo the move previously played by Traverse
	BackTraverse()

	// Play out the game from the current position until a terminal
	// state, restoring the position before returning. The result is
	// from the perspective of the side to move at the start.
	Rollout() Result

	// Called when the tree is rebuilt on a fresh root
	Reset()

	// Inject the random source used by rollouts
	SetRand(*rand.Rand)
}
