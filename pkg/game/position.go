package game

import "fmt"

// Position is the rules-engine surface shared by both variants.
// Implementations are not safe for concurrent mutation; a search must
// operate on its own Clone.
type Position interface {
	Variant() Variant

	// Side to move
	Turn() Mark

	// Terminal state of the whole game
	Outcome() Outcome
	IsTerminal() bool

	// All legal moves in increasing (sub-board, cell) order,
	// empty iff the outcome is terminal
	LegalMoves() *MoveList
	IsLegal(Move) bool

	// Unchecked fast path used by the search, the move must be legal
	MakeMove(Move)

	// Checked application, fails with *IllegalMoveError
	MakeLegalMove(Move) error

	// Take back the last move, no-op on a fresh position
	Undo()

	// Number of moves played so far
	MoveCount() int

	// Reports whether playing 'move' as 'mark' would immediately win
	// the game, regardless of whose turn it is. One-ply oracle for the
	// win/block lookahead.
	IsWinningMove(move Move, mark Mark) bool

	// Deep copy without any shared memory
	Clone() Position

	// FEN-like string form of the position
	Notation() string
}

// New creates a fresh starting position of the given variant, X to move
func New(v Variant) Position {
	if v == VariantUltimate {
		return NewUltimate()
	}
	return NewClassic()
}

// IllegalMoveError reports a rejected move. Always recoverable: the
// caller re-prompts or discards the suggestion.
type IllegalMoveError struct {
	Move   Move
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s: %s", e.Move, e.Reason)
}

func illegalMove(move Move, reason string) error {
	return &IllegalMoveError{Move: move, Reason: reason}
}
