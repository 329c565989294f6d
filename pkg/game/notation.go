package game

import (
	"fmt"
	"strings"
)

// FEN-like notation, much like a chessboard's.
//
// Ultimate: nine sub-board sections separated by '/', then the side to
// move, then the forced sub-board index (or '-'):
//
//	9/9/9/9/9/9/9/9/9 x -
//	1x7/2o6/9/9/4x4/9/9/9/9 o 4
//
// Each section lists the sub-board's cells in row-major order, runs of
// empty cells collapsed to a digit.
//
// Classic: a single section plus the side to move:
//
//	xx1oo4 x

const (
	StartClassic  = "9 x"
	StartUltimate = "9/9/9/9/9/9/9/9/9 x -"
)

func writeBoardSection(builder *strings.Builder, b *Board) {
	empty := 0
	for cell := 0; cell < 9; cell++ {
		mark := b.At(cell)
		if mark == MarkNone {
			empty++
			continue
		}
		if empty > 0 {
			builder.WriteByte('0' + byte(empty))
			empty = 0
		}
		builder.WriteString(mark.String())
	}
	if empty > 0 {
		builder.WriteByte('0' + byte(empty))
	}
}

// Fill a board from its notation section, returns the marks placed
func parseBoardSection(section string, b *Board) error {
	cell := 0
	for _, r := range section {
		switch {
		case r >= '1' && r <= '9':
			cell += int(r - '0')
		case r == 'x' || r == 'o':
			if cell >= 9 {
				return fmt.Errorf("notation: section %q overflows the board", section)
			}
			b.put(cell, MarkFromRune(r))
			cell++
		default:
			return fmt.Errorf("notation: unexpected character %q", r)
		}
	}
	if cell != 9 {
		return fmt.Errorf("notation: section %q covers %d cells, want 9", section, cell)
	}
	return nil
}

func parseTurn(s string) (Mark, error) {
	if turn := MarkFromRune(rune(s[0])); len(s) == 1 && turn != MarkNone {
		return turn, nil
	}
	return MarkNone, fmt.Errorf("notation: bad side to move %q", s)
}

func (p *Classic) Notation() string {
	builder := strings.Builder{}
	writeBoardSection(&builder, &p.board)
	builder.WriteByte(' ')
	builder.WriteString(p.turn.String())
	return builder.String()
}

func (p *Ultimate) Notation() string {
	builder := strings.Builder{}
	for i := range p.boards {
		if i > 0 {
			builder.WriteByte('/')
		}
		writeBoardSection(&builder, &p.boards[i])
	}

	builder.WriteByte(' ')
	builder.WriteString(p.turn.String())
	builder.WriteByte(' ')
	if p.forced == ForcedAny {
		builder.WriteByte('-')
	} else {
		builder.WriteByte('0' + byte(p.forced))
	}
	return builder.String()
}

// ClassicFromNotation parses "xx1oo4 x" style strings. The move history
// of the result is empty.
func ClassicFromNotation(notation string) (*Classic, error) {
	fields := strings.Fields(notation)
	if len(fields) != 2 {
		return nil, fmt.Errorf("notation: want \"<board> <turn>\", got %q", notation)
	}

	p := NewClassic()
	if err := parseBoardSection(fields[0], &p.board); err != nil {
		return nil, err
	}

	turn, err := parseTurn(fields[1])
	if err != nil {
		return nil, err
	}

	p.turn = turn
	p.outcome = p.board.Status().outcome()
	return p, nil
}

// UltimateFromNotation parses "9/9/.../9 x -" style strings. The meta
// board, outcome and forced constraint are recomputed from scratch; a
// forced index pointing at a decided sub-board relaxes to ForcedAny.
func UltimateFromNotation(notation string) (*Ultimate, error) {
	fields := strings.Fields(notation)
	if len(fields) != 3 {
		return nil, fmt.Errorf("notation: want \"<boards> <turn> <forced>\", got %q", notation)
	}

	sections := strings.Split(fields[0], "/")
	if len(sections) != 9 {
		return nil, fmt.Errorf("notation: want 9 sub-board sections, got %d", len(sections))
	}

	p := NewUltimate()
	for i, section := range sections {
		if err := parseBoardSection(section, &p.boards[i]); err != nil {
			return nil, err
		}
		p.meta[i] = p.boards[i].Status()
	}

	turn, err := parseTurn(fields[1])
	if err != nil {
		return nil, err
	}
	p.turn = turn

	switch f := fields[2]; {
	case f == "-":
		p.forced = ForcedAny
	case len(f) == 1 && f[0] >= '0' && f[0] <= '8':
		p.forced = int8(f[0] - '0')
		if p.meta[p.forced] != BoardOpen {
			p.forced = ForcedAny
		}
	default:
		return nil, fmt.Errorf("notation: bad forced board %q", f)
	}

	p.outcome = p.metaOutcome()
	return p, nil
}

// FromNotation picks the parser matching the variant
func FromNotation(v Variant, notation string) (Position, error) {
	if notation == "startpos" {
		if v == VariantUltimate {
			notation = StartUltimate
		} else {
			notation = StartClassic
		}
	}

	if v == VariantUltimate {
		return UltimateFromNotation(notation)
	}
	return ClassicFromNotation(notation)
}
