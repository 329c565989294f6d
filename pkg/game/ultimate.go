package game

import "math/bits"

// Per-move history entry, carries everything Undo needs to restore
type ultimateState struct {
	move       Move
	prevForced int8
	prevStatus BoardStatus // status of the mutated sub-board before the move
}

// Ultimate is the board-of-boards variant: nine sub-boards plus a
// derived meta-board of their statuses. The forced-board constraint
// always refers to an open sub-board or is ForcedAny.
type Ultimate struct {
	boards  [9]Board
	meta    [9]BoardStatus
	forced  int8
	turn    Mark
	outcome Outcome
	history []ultimateState
}

func NewUltimate() *Ultimate {
	return &Ultimate{
		forced:  ForcedAny,
		turn:    MarkX,
		history: make([]ultimateState, 0, 81),
	}
}

func (p *Ultimate) Variant() Variant { return VariantUltimate }
func (p *Ultimate) Turn() Mark       { return p.turn }
func (p *Ultimate) Outcome() Outcome { return p.outcome }
func (p *Ultimate) IsTerminal() bool { return p.outcome.Terminal() }
func (p *Ultimate) MoveCount() int   { return len(p.history) }

// Board returns a copy of the sub-board at given index
func (p *Ultimate) Board(i int) Board { return p.boards[i] }

// Meta returns the meta-board of sub-board statuses
func (p *Ultimate) Meta() [9]BoardStatus { return p.meta }

// Forced returns the sub-board the side to move is constrained to,
// or ForcedAny
func (p *Ultimate) Forced() int8 { return p.forced }

func (p *Ultimate) LegalMoves() *MoveList {
	movelist := NewMoveList()
	if p.outcome.Terminal() {
		return movelist
	}

	if p.forced != ForcedAny {
		p.appendBoardMoves(movelist, int(p.forced))
		return movelist
	}

	for board := 0; board < 9; board++ {
		if p.meta[board] == BoardOpen {
			p.appendBoardMoves(movelist, board)
		}
	}
	return movelist
}

func (p *Ultimate) appendBoardMoves(ml *MoveList, board int) {
	for free := p.boards[board].Free(); free != 0; free &= free - 1 {
		ml.Append(board, bits.TrailingZeros(free))
	}
}

func (p *Ultimate) IsLegal(move Move) bool {
	board, cell := move.Board(), move.Cell()
	return !p.outcome.Terminal() &&
		board < 9 && cell < 9 &&
		(p.forced == ForcedAny || int(p.forced) == board) &&
		p.meta[board] == BoardOpen &&
		p.boards[board].Empty(cell)
}

func (p *Ultimate) MakeMove(move Move) {
	board, cell := move.Board(), move.Cell()

	p.history = append(p.history, ultimateState{
		move:       move,
		prevForced: p.forced,
		prevStatus: p.meta[board],
	})

	p.boards[board].put(cell, p.turn)
	p.meta[board] = p.boards[board].Status()

	// The destination cell decides the next forced board, relaxing to
	// "any open board" when that sub-board is no longer open
	if p.meta[cell] == BoardOpen {
		p.forced = int8(cell)
	} else {
		p.forced = ForcedAny
	}

	p.outcome = p.metaOutcome()
	p.turn = p.turn.Other()
}

func (p *Ultimate) MakeLegalMove(move Move) error {
	if err := p.checkLegal(move); err != nil {
		return err
	}
	p.MakeMove(move)
	return nil
}

func (p *Ultimate) checkLegal(move Move) error {
	board, cell := move.Board(), move.Cell()
	switch {
	case p.outcome.Terminal():
		return illegalMove(move, "game is over")
	case board >= 9 || cell >= 9:
		return illegalMove(move, "index out of range")
	case p.forced != ForcedAny && int(p.forced) != board:
		return illegalMove(move, "must play on the forced sub-board")
	case p.meta[board] != BoardOpen:
		return illegalMove(move, "sub-board is decided")
	case !p.boards[board].Empty(cell):
		return illegalMove(move, "cell is occupied")
	}
	return nil
}

func (p *Ultimate) Undo() {
	if len(p.history) == 0 {
		return
	}

	last := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	board, cell := last.move.Board(), last.move.Cell()

	p.turn = p.turn.Other()
	p.boards[board].clear(cell, p.turn)
	p.meta[board] = last.prevStatus
	p.forced = last.prevForced
	p.outcome = InProgress
}

// Game-level outcome derived from the meta-board: a line of three
// sub-boards won by the same mark wins, no line with no open board
// left is a draw. Drawn sub-boards never contribute to a line.
func (p *Ultimate) metaOutcome() Outcome {
	for _, line := range linePatterns {
		s := p.meta[line[0]]
		if (s == BoardXWon || s == BoardOWon) &&
			s == p.meta[line[1]] && s == p.meta[line[2]] {
			return s.outcome()
		}
	}

	for _, s := range p.meta {
		if s == BoardOpen {
			return InProgress
		}
	}
	return Draw
}

func (p *Ultimate) IsWinningMove(move Move, mark Mark) bool {
	board, cell := move.Board(), move.Cell()
	if mark == MarkNone || p.meta[board] != BoardOpen || !p.boards[board].Empty(cell) {
		return false
	}

	// The meta-board can only change if the move wins its sub-board
	if !p.boards[board].wouldWin(cell, mark) {
		return false
	}

	won := wonStatus(mark)
	for _, line := range linePatterns {
		hit := true
		for _, i := range line {
			s := p.meta[i]
			if i == board {
				s = won
			}
			if s != won {
				hit = false
				break
			}
		}
		if hit {
			return true
		}
	}
	return false
}

func (p *Ultimate) Clone() Position {
	clone := &Ultimate{
		boards:  p.boards,
		meta:    p.meta,
		forced:  p.forced,
		turn:    p.turn,
		outcome: p.outcome,
		history: make([]ultimateState, len(p.history), cap(p.history)),
	}
	copy(clone.history, p.history)
	return clone
}
