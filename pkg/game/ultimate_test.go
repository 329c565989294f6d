package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestUltimateForcedBoard(t *testing.T) {
	p := NewUltimate()

	// A move into cell 4 of sub-board 2 forces the opponent into
	// sub-board 4
	if err := p.MakeLegalMove(NewMove(2, 4)); err != nil {
		t.Fatal(err)
	}
	if p.Forced() != 4 {
		t.Fatalf("forced = %d, want 4", p.Forced())
	}

	// Every legal move now targets sub-board 4
	for _, m := range p.LegalMoves().Slice() {
		if m.Board() != 4 {
			t.Fatalf("legal move %s outside the forced board", m)
		}
	}

	// Playing outside the forced board is rejected
	err := p.MakeLegalMove(NewMove(0, 0))
	var illegal *IllegalMoveError
	if !errors.As(err, &illegal) {
		t.Fatalf("move outside forced board: err = %v, want IllegalMoveError", err)
	}
}

func TestUltimateForcedBoardRelaxes(t *testing.T) {
	// Sub-board 4 belongs to x; a move with destination cell 4 must
	// relax the constraint to any open board
	p, err := UltimateFromNotation("9/9/9/9/x1x1x1x1x/9/9/9/9 x -")
	if err != nil {
		t.Fatal(err)
	}
	if p.Meta()[4] != BoardXWon {
		t.Fatalf("meta[4] = %v, want BoardXWon", p.Meta()[4])
	}

	if err := p.MakeLegalMove(NewMove(0, 4)); err != nil {
		t.Fatal(err)
	}
	if p.Forced() != ForcedAny {
		t.Errorf("forced = %d, want ForcedAny", p.Forced())
	}

	// And no legal move targets the decided board
	for _, m := range p.LegalMoves().Slice() {
		if m.Board() == 4 {
			t.Fatalf("legal move %s targets a decided sub-board", m)
		}
	}
}

func TestUltimateMetaWin(t *testing.T) {
	// x owns sub-boards 0 and 1, and wins sub-board 2 with b2c2,
	// completing the top meta row
	p, err := UltimateFromNotation("xxx6/xxx6/xx7/9/9/9/9/9/oooooo3 x 2")
	if err != nil {
		t.Fatal(err)
	}
	if p.Outcome() != InProgress {
		t.Fatalf("outcome = %v before the winning move", p.Outcome())
	}

	if err := p.MakeLegalMove(NewMove(2, 2)); err != nil {
		t.Fatal(err)
	}

	if p.Outcome() != XWon {
		t.Errorf("outcome = %v, want XWon", p.Outcome())
	}
	if moves := p.LegalMoves(); moves.Size() != 0 {
		t.Errorf("terminal game still has %d legal moves", moves.Size())
	}
}

func TestUltimateDrawnMetaLine(t *testing.T) {
	// A drawn sub-board never contributes to a meta line
	p, err := UltimateFromNotation("xxx6/xoxxoooxx/xx7/9/9/9/9/9/9 x 2")
	if err != nil {
		t.Fatal(err)
	}
	if p.Meta()[1] != BoardDrawn {
		t.Fatalf("meta[1] = %v, want BoardDrawn", p.Meta()[1])
	}

	if err := p.MakeLegalMove(NewMove(2, 2)); err != nil {
		t.Fatal(err)
	}
	if p.Outcome() != InProgress {
		t.Errorf("outcome = %v, a drawn sub-board must not complete a line", p.Outcome())
	}
}

func TestUltimateIsWinningMove(t *testing.T) {
	p, err := UltimateFromNotation("xxx6/xxx6/xx7/9/9/9/9/9/oo1oo4 x 2")
	if err != nil {
		t.Fatal(err)
	}

	if !p.IsWinningMove(NewMove(2, 2), MarkX) {
		t.Error("b2c2 wins the game for x")
	}
	if p.IsWinningMove(NewMove(2, 2), MarkO) {
		t.Error("b2c2 does not win for o")
	}
	// o finishing sub-board 8 wins that board but not the game
	if p.IsWinningMove(NewMove(8, 2), MarkO) {
		t.Error("winning a lone sub-board is not a game win")
	}
}

func TestUltimateLegalMovesEmptyIffTerminal(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 20; i++ {
		p := NewUltimate()
		for {
			moves := p.LegalMoves()
			if (moves.Size() == 0) != p.IsTerminal() {
				t.Fatalf("legal moves %d, terminal %v: %s", moves.Size(), p.IsTerminal(), p.Notation())
			}
			if p.IsTerminal() {
				break
			}

			// Forced-board invariant: the constraint always names an
			// open sub-board
			if f := p.Forced(); f != ForcedAny && p.Meta()[f] != BoardOpen {
				t.Fatalf("forced board %d is not open: %s", f, p.Notation())
			}

			if err := p.MakeLegalMove(moves.Slice()[rng.Intn(moves.Size())]); err != nil {
				t.Fatalf("move from LegalMoves rejected: %v", err)
			}
		}
	}
}

func TestUltimateUndoRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 20; i++ {
		p := NewUltimate()
		start := p.Notation()

		played := 0
		for !p.IsTerminal() {
			moves := p.LegalMoves()
			p.MakeMove(moves.Slice()[rng.Intn(moves.Size())])
			played++
		}
		for i := 0; i < played; i++ {
			p.Undo()
		}

		if p.Notation() != start {
			t.Fatalf("undo round trip: %q, want %q", p.Notation(), start)
		}
		if p.MoveCount() != 0 || p.Turn() != MarkX || p.Outcome() != InProgress {
			t.Fatalf("undo round trip left state: count=%d turn=%v outcome=%v",
				p.MoveCount(), p.Turn(), p.Outcome())
		}
	}
}

func TestUltimateCloneIsDeep(t *testing.T) {
	p := NewUltimate()
	if err := p.MakeLegalMove(NewMove(2, 4)); err != nil {
		t.Fatal(err)
	}

	clone := p.Clone().(*Ultimate)
	if err := clone.MakeLegalMove(NewMove(4, 0)); err != nil {
		t.Fatal(err)
	}
	clone.Undo()
	clone.Undo()

	if p.MoveCount() != 1 || p.Forced() != 4 {
		t.Error("mutating the clone changed the original")
	}
}
