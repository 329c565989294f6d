package mcts

// Node of the search tree. Children are owned by their parent and
// stored inline; the Parent pointer exists only for the single upward
// backpropagation pass. Nodes form a tree, never a graph.
type Node[T MoveLike] struct {
	Move     T
	Parent   *Node[T]
	Children []Node[T]

	visits   int32
	q        float64
	terminal bool
}

func NewNode[T MoveLike](parent *Node[T], move T, terminal bool) *Node[T] {
	return &Node[T]{
		Move:     move,
		Parent:   parent,
		terminal: terminal,
	}
}

func newRootNode[T MoveLike](terminal bool) *Node[T] {
	return &Node[T]{terminal: terminal}
}

// Number of visits
func (n *Node[T]) N() int32 {
	return n.visits
}

// Accumulated outcomes, from the perspective of the player who moved
// into this node (wins 1, draws 0.5)
func (n *Node[T]) Q() float64 {
	return n.q
}

// Average outcome, NaN-free only for visited nodes
func (n *Node[T]) AvgQ() float64 {
	return n.q / float64(n.visits)
}

func (n *Node[T]) AddOutcome(result Result) {
	n.visits++
	n.q += float64(result)
}

func (n *Node[T]) Terminal() bool {
	return n.terminal
}

// Same as asking if the node has children
func (n *Node[T]) Expanded() bool {
	return len(n.Children) > 0
}

// Helper to count the nodes of a subtree
func countTreeNodes[T MoveLike](node *Node[T]) uint32 {
	nodes := uint32(1)
	for i := range node.Children {
		nodes += countTreeNodes(&node.Children[i])
	}
	return nodes
}
