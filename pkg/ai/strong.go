package ai

import (
	"math/rand"

	"github.com/IlikeChooros/go-tictac/pkg/game"
	"github.com/IlikeChooros/go-tictac/pkg/mcts"
)

// Strong strategy: a fresh Monte Carlo tree search per decision,
// answered with the robust child (most visits)
func searchMove(pos game.Position, cfg Config, rng *rand.Rand) (game.Move, error) {
	if cfg.Cycles == 0 && cfg.Movetime <= 0 {
		return game.MoveNone, ErrNoBudget
	}
	if pos.IsTerminal() || pos.LegalMoves().Size() == 0 {
		return game.MoveNone, ErrNoMoves
	}

	tree := NewSearch(pos, rng)
	if cfg.Exploration > 0 {
		tree.SetExploration(cfg.Exploration)
	}

	limits := mcts.DefaultLimits()
	if cfg.Cycles > 0 {
		limits.SetCycles(cfg.Cycles)
	}
	if cfg.Movetime > 0 {
		// The engine timer works in whole milliseconds; a smaller
		// budget rounds up instead of falling through to no limit
		ms := int(cfg.Movetime.Milliseconds())
		if ms == 0 {
			ms = 1
		}
		limits.SetMovetime(ms)
	}
	tree.SetLimits(limits)

	tree.Search()

	move, ok := tree.RootMove()
	if !ok {
		// Nothing was simulated, e.g. an already-cancelled context
		return game.MoveNone, ErrNoBudget
	}
	return move, nil
}

// NewSearch builds an MCTS engine over a private clone of pos. Exposed
// for callers that want listeners, contexts or tree reuse instead of
// the one-shot ChooseMove.
func NewSearch(pos game.Position, rng *rand.Rand) *mcts.MCTS[game.Move] {
	ops := &gameOps{pos: pos.Clone()}
	tree := mcts.NewMCTS[game.Move](ops, pos.IsTerminal())
	if rng != nil {
		tree.SetRand(rng)
	}
	return tree
}

// gameOps adapts game.Position to the engine's GameOperations. It owns
// its position outright; the search branches on this working copy and
// never touches the authoritative game state.
type gameOps struct {
	pos  game.Position
	rand *rand.Rand
}

func (o *gameOps) ExpandNode(parent *mcts.Node[game.Move]) uint32 {
	moves := o.pos.LegalMoves()
	parent.Children = make([]mcts.Node[game.Move], moves.Size())

	for i, move := range moves.Slice() {
		o.pos.MakeMove(move)
		terminal := o.pos.IsTerminal()
		o.pos.Undo()

		parent.Children[i] = *mcts.NewNode(parent, move, terminal)
	}
	return uint32(moves.Size())
}

func (o *gameOps) Traverse(move game.Move) {
	o.pos.MakeMove(move)
}

func (o *gameOps) BackTraverse() {
	o.pos.Undo()
}

// Rollout plays uniformly random moves until the game ends, scores the
// outcome for the side that was to move, and rolls the position back
func (o *gameOps) Rollout() mcts.Result {
	leafTurn := o.pos.Turn()
	moveCount := 0

	for !o.pos.IsTerminal() {
		moves := o.pos.LegalMoves()
		o.pos.MakeMove(moves.Slice()[o.rand.Intn(moves.Size())])
		moveCount++
	}

	var result mcts.Result
	switch winner, won := o.pos.Outcome().Winner(); {
	case !won:
		result = 0.5
	case winner == leafTurn:
		result = 1.0
	default:
		result = 0.0
	}

	for i := 0; i < moveCount; i++ {
		o.pos.Undo()
	}
	return result
}

func (o *gameOps) Reset() {}

func (o *gameOps) SetRand(r *rand.Rand) {
	o.rand = r
}
