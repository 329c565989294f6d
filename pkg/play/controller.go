// Package play is the glue boundary between the game core and a
// presentation layer: it holds the authoritative position and applies
// human and AI moves through the rules engine.
package play

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-tictac/pkg/ai"
	"github.com/IlikeChooros/go-tictac/pkg/game"
)

// Controller owns the live GameState. It is turn-based and
// single-threaded by contract: only one move is ever being decided, so
// no locking is needed. AI searches run on clones and never touch the
// position held here.
type Controller struct {
	pos game.Position
	cfg ai.Config
	rng *rand.Rand
	log zerolog.Logger
}

type Option func(*Controller)

// WithConfig sets the Strong strategy's search budget
func WithConfig(cfg ai.Config) Option {
	return func(c *Controller) {
		c.cfg = cfg
	}
}

// WithRand injects the random source used by the AI strategies
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithPosition starts from the given position instead of the variant's
// starting one
func WithPosition(pos game.Position) Option {
	return func(c *Controller) {
		c.pos = pos
	}
}

func NewController(variant game.Variant, options ...Option) *Controller {
	c := &Controller{
		pos: game.New(variant),
		cfg: ai.DefaultConfig(),
		log: zerolog.Nop(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// NewGame discards the current game and starts a fresh one
func (c *Controller) NewGame(variant game.Variant) {
	c.pos = game.New(variant)
	c.log.Info().Stringer("variant", variant).Msg("new game")
}

// Position exposes the live position; callers must not mutate it
// outside Apply/Undo
func (c *Controller) Position() game.Position {
	return c.pos
}

func (c *Controller) Turn() game.Mark {
	return c.pos.Turn()
}

func (c *Controller) Outcome() game.Outcome {
	return c.pos.Outcome()
}

func (c *Controller) LegalMoves() []game.Move {
	return c.pos.LegalMoves().Slice()
}

// Apply validates and plays a move; a rejected move surfaces
// *game.IllegalMoveError and leaves the state untouched
func (c *Controller) Apply(move game.Move) error {
	if err := c.pos.MakeLegalMove(move); err != nil {
		c.log.Debug().Err(err).Msg("move rejected")
		return err
	}

	c.log.Debug().
		Stringer("move", move).
		Stringer("outcome", c.pos.Outcome()).
		Msg("move applied")
	return nil
}

// Undo takes back the last applied move
func (c *Controller) Undo() {
	c.pos.Undo()
}

// AIMove chooses a move of the given strength for the side to move and
// applies it on the AI's behalf
func (c *Controller) AIMove(strength ai.Strength) (game.Move, error) {
	move, err := ai.ChooseMove(c.pos, strength, c.cfg, c.rng)
	if err != nil {
		return game.MoveNone, err
	}

	if err := c.pos.MakeLegalMove(move); err != nil {
		// Unreachable by construction, the AI only suggests legal moves
		return game.MoveNone, err
	}

	c.log.Debug().
		Stringer("strength", strength).
		Stringer("move", move).
		Msg("ai move")
	return move, nil
}
