package mcts

import "math"

// selectChild picks the child maximizing the UCB1 score
//
//	Q/N + C * sqrt(ln(parentN) / N)
//
// An unvisited child has score +infinity and is taken immediately, so
// every child is tried at least once before any is revisited. Child
// statistics are stored from the perspective of the player choosing at
// the parent, which makes the maximization correct for a zero-sum
// game.
func (t *MCTS[T]) selectChild(parent *Node[T]) *Node[T] {
	best := -1.0
	index := 0
	lnParent := math.Log(float64(parent.N()))

	for i := range parent.Children {
		child := &parent.Children[i]
		visits := float64(child.N())

		if visits == 0 {
			return child
		}

		ucb1 := child.Q()/visits + t.exploration*math.Sqrt(lnParent/visits)
		if ucb1 > best {
			best = ucb1
			index = i
		}
	}

	return &parent.Children[index]
}
