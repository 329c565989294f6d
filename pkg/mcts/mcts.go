package mcts

import (
	"context"
	"fmt"
	"math"
	"math/rand"
)

// MCTS is a single-searcher Monte Carlo tree search over user-defined
// game operations. The tree is exclusively owned by the search: no two
// mutators ever run concurrently, and the working position inside ops
// is a private copy of the game being analyzed. Run Search on a
// separate goroutine if the caller must stay responsive; Stop and
// SetContext are the only safe entry points while it runs.
type MCTS[T MoveLike] struct {
	Root    *Node[T]
	Limiter *Limiter

	ops         GameOperations[T]
	listener    StatsListener[T]
	rand        *rand.Rand
	exploration float64

	size     uint32
	cycles   uint32
	maxdepth int
	cps      uint32
}

// NewMCTS creates a tree rooted at the ops' current position and
// expands the root. 'terminal' marks a root with no moves to search.
func NewMCTS[T MoveLike](ops GameOperations[T], terminal bool) *MCTS[T] {
	t := &MCTS[T]{
		Root:        newRootNode[T](terminal),
		Limiter:     NewLimiter(),
		ops:         ops,
		listener:    NewStatsListener[T](),
		exploration: DefaultExploration,
		size:        1,
	}

	t.SetRand(rand.New(rand.NewSource(SeedGeneratorFn())))
	if !terminal {
		t.size += ops.ExpandNode(t.Root)
	}
	return t
}

func (t *MCTS[T]) SetLimits(limits *Limits) {
	t.Limiter.SetLimits(limits)
}

func (t *MCTS[T]) Limits() *Limits {
	return t.Limiter.Limits()
}

// Adds a context to the limiter, enabling cancellation through it:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	tree.SetContext(ctx)
//	go tree.Search()
//	...
//	cancel()
func (t *MCTS[T]) SetContext(ctx context.Context) {
	t.Limiter.SetContext(ctx)
}

// Stop the search, safe to call from another goroutine
func (t *MCTS[T]) Stop() {
	t.Limiter.SetStop(true)
}

func (t *MCTS[T]) SetExploration(c float64) {
	t.exploration = math.Max(0, c)
}

// Inject the random source used for expansion tie-breaks and rollouts
func (t *MCTS[T]) SetRand(r *rand.Rand) {
	t.rand = r
	t.ops.SetRand(r)
}

func (t *MCTS[T]) StatsListener() *StatsListener[T] {
	return &t.listener
}

// Number of full select/expand/rollout/backpropagate cycles ran
func (t *MCTS[T]) Cycles() int {
	return int(t.cycles)
}

// Maximum depth reached during the search
func (t *MCTS[T]) MaxDepth() int {
	return t.maxdepth
}

// Cycles per second of the last search
func (t *MCTS[T]) Cps() uint32 {
	return t.cps
}

// Number of nodes in the tree
func (t *MCTS[T]) Size() uint32 {
	return t.size
}

func (t *MCTS[T]) StopReason() StopReason {
	return t.Limiter.StopReason()
}

func (t *MCTS[T]) String() string {
	return fmt.Sprintf("MCTS{Size=%d, Cycles=%d, MaxDepth=%d, Cps=%d, Stop=%v}",
		t.Size(), t.Cycles(), t.MaxDepth(), t.Cps(), t.StopReason())
}

// Search runs the four-phase loop until the limiter says otherwise:
//
//  1. selection  - descend through expanded nodes by UCB1
//  2. expansion  - materialize the children of a visited leaf
//  3. rollout    - random playout from the leaf, via ops
//  4. backprop   - credit the path back to the root
func (t *MCTS[T]) Search() {
	t.setupSearch()

	if t.Root.Terminal() || !t.Root.Expanded() {
		t.invoke(t.listener.onStop)
		return
	}

	for t.Limiter.Ok(t.maxdepth, t.cycles) {
		node, depth := t.selection()
		t.backpropagate(node, t.ops.Rollout())

		t.cycles++
		t.cps = cyclesPerSecond(t.cycles, t.Limiter.Elapsed())

		if depth > t.maxdepth {
			t.maxdepth = depth
			t.invoke(t.listener.onDepth)
		}
		if t.listener.onCycle != nil && t.cycles%uint32(t.listener.nCycles) == 0 {
			t.listener.onCycle(t.stats())
		}
	}

	t.Limiter.EvaluateStopReason(t.maxdepth, t.cycles)
	t.invoke(t.listener.onStop)
}

// The product cycles*1000 overflows uint32 past ~4.3M cycles, so the
// rate is computed wide and narrowed at the end
func cyclesPerSecond(cycles, elapsedMs uint32) uint32 {
	return uint32(uint64(cycles) * 1000 / uint64(elapsedMs))
}

// This only resets the counters and the stop flag, it does not start
// the search
func (t *MCTS[T]) setupSearch() {
	t.Limiter.Reset()
	t.cycles = 0
	t.cps = 0
	t.maxdepth = 0
}

func (t *MCTS[T]) invoke(f ListenerFunc[T]) {
	if f != nil {
		f(t.stats())
	}
}

// selection descends to a leaf by UCB1, keeping ops in sync, then
// expands the leaf once it has been visited before. Returns the node
// to roll out from and its depth.
func (t *MCTS[T]) selection() (*Node[T], int) {
	node := t.Root
	depth := 0

	for node.Expanded() {
		node = t.selectChild(node)
		t.ops.Traverse(node.Move)
		depth++
	}

	if node.N() > 0 && !node.Terminal() {
		if added := t.ops.ExpandNode(node); added > 0 {
			t.size += added
			node = &node.Children[t.rand.Intn(len(node.Children))]
			t.ops.Traverse(node.Move)
			depth++
		}
	}

	return node, depth
}

// backpropagate walks the path up to the root, flipping the result at
// every level: each node's statistics reflect the success of the
// player who moved into it. Draws credit both sides with 0.5.
func (t *MCTS[T]) backpropagate(node *Node[T], result Result) {
	for node != nil {
		result = 1.0 - result
		node.AddOutcome(result)

		if node.Parent != nil {
			t.ops.BackTraverse()
		}
		node = node.Parent
	}
}

// BestChild returns the best child of the node per the policy, nil for
// a node with no visited children
func (t *MCTS[T]) BestChild(node *Node[T], policy BestChildPolicy) *Node[T] {
	var best *Node[T]

	switch policy {
	case BestChildMostVisits:
		maxVisits := int32(0)
		for i := range node.Children {
			if child := &node.Children[i]; child.N() > maxVisits {
				maxVisits = child.N()
				best = child
			}
		}

	case BestChildWinRate:
		bestRate := -1.0
		for i := range node.Children {
			child := &node.Children[i]
			if child.N() == 0 {
				continue
			}
			if rate := child.AvgQ(); rate > bestRate {
				bestRate = rate
				best = child
			}
		}
	}

	return best
}

// RootMove returns the robust-child answer: the most visited move at
// the root. ok is false when nothing was searched.
func (t *MCTS[T]) RootMove() (move T, ok bool) {
	if best := t.BestChild(t.Root, BestChildMostVisits); best != nil {
		return best.Move, true
	}
	return move, false
}

// RootScore is the current evaluation of the root position, in [0, 1]
// from the root mover's perspective; NaN before any search
func (t *MCTS[T]) RootScore() float64 {
	if best := t.BestChild(t.Root, BestChildMostVisits); best != nil {
		return best.AvgQ()
	}
	return math.NaN()
}

// Pv returns the principal variation: best children all the way down
func (t *MCTS[T]) Pv(policy BestChildPolicy) []T {
	pv := make([]T, 0, t.maxdepth)
	node := t.Root

	for node.Expanded() {
		node = t.BestChild(node, policy)
		if node == nil {
			break
		}
		pv = append(pv, node.Move)
	}
	return pv
}

// MakeMove re-roots the tree on the given move's child, keeping its
// subtree, and advances the ops position. Returns false (and does
// nothing) when the move was never expanded; the caller should then
// rebuild the tree from the new position.
func (t *MCTS[T]) MakeMove(move T) bool {
	var next *Node[T]
	for i := range t.Root.Children {
		if t.Root.Children[i].Move == move {
			next = &t.Root.Children[i]
			break
		}
	}

	if next == nil {
		return false
	}

	t.ops.Traverse(move)

	oldRoot := t.Root
	t.Root = next
	t.Root.Parent = nil
	t.size = countTreeNodes(next)
	oldRoot.Children = nil
	return true
}

// Reset discards the tree and builds a fresh root from the ops'
// current position
func (t *MCTS[T]) Reset(terminal bool) {
	t.ops.Reset()
	t.Root = newRootNode[T](terminal)
	t.size = 1
	if !terminal {
		t.size += t.ops.ExpandNode(t.Root)
	}
}

func (t *MCTS[T]) stats() ListenerTreeStats[T] {
	stats := ListenerTreeStats[T]{
		Pv:         t.Pv(BestChildMostVisits),
		MaxDepth:   t.maxdepth,
		Cycles:     int(t.cycles),
		TimeMs:     int(t.Limiter.Elapsed()),
		Cps:        t.cps,
		Size:       t.size,
		StopReason: t.Limiter.StopReason(),
	}

	if best := t.BestChild(t.Root, BestChildMostVisits); best != nil {
		stats.BestMove = best.Move
		stats.Eval = best.AvgQ()
	}
	return stats
}
