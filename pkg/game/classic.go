package game

import "math/bits"

// Classic is the ordinary single-board game
type Classic struct {
	board   Board
	turn    Mark
	outcome Outcome
	history []Move
}

func NewClassic() *Classic {
	return &Classic{
		turn:    MarkX,
		history: make([]Move, 0, 9),
	}
}

func (p *Classic) Variant() Variant { return VariantClassic }
func (p *Classic) Turn() Mark       { return p.turn }
func (p *Classic) Outcome() Outcome { return p.outcome }
func (p *Classic) IsTerminal() bool { return p.outcome.Terminal() }
func (p *Classic) MoveCount() int   { return len(p.history) }

// Board returns a copy of the underlying board
func (p *Classic) Board() Board { return p.board }

func (p *Classic) LegalMoves() *MoveList {
	movelist := NewMoveList()
	if p.outcome.Terminal() {
		return movelist
	}

	for free := p.board.Free(); free != 0; free &= free - 1 {
		movelist.Append(0, bits.TrailingZeros(free))
	}
	return movelist
}

func (p *Classic) IsLegal(move Move) bool {
	return !p.outcome.Terminal() &&
		move.Board() == 0 && move.Cell() < 9 &&
		p.board.Empty(move.Cell())
}

func (p *Classic) MakeMove(move Move) {
	p.board.put(move.Cell(), p.turn)
	p.outcome = p.board.Status().outcome()
	p.turn = p.turn.Other()
	p.history = append(p.history, move)
}

func (p *Classic) MakeLegalMove(move Move) error {
	if err := p.checkLegal(move); err != nil {
		return err
	}
	p.MakeMove(move)
	return nil
}

func (p *Classic) checkLegal(move Move) error {
	switch {
	case p.outcome.Terminal():
		return illegalMove(move, "game is over")
	case move.Board() != 0 || move.Cell() >= 9:
		return illegalMove(move, "cell out of range")
	case !p.board.Empty(move.Cell()):
		return illegalMove(move, "cell is occupied")
	}
	return nil
}

func (p *Classic) Undo() {
	if len(p.history) == 0 {
		return
	}

	move := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	p.turn = p.turn.Other()
	p.board.clear(move.Cell(), p.turn)
	p.outcome = InProgress
}

func (p *Classic) IsWinningMove(move Move, mark Mark) bool {
	return mark != MarkNone &&
		p.board.Empty(move.Cell()) &&
		p.board.wouldWin(move.Cell(), mark)
}

func (p *Classic) Clone() Position {
	clone := &Classic{
		board:   p.board,
		turn:    p.turn,
		outcome: p.outcome,
		history: make([]Move, len(p.history), cap(p.history)),
	}
	copy(clone.history, p.history)
	return clone
}
