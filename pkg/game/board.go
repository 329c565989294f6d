package game

// A single 3x3 board, stored as one bitboard per mark.
// Cell indexes are row-major, 0..8:
//
//	0 | 1 | 2
//	---------
//	3 | 4 | 5
//	---------
//	6 | 7 | 8
type Board struct {
	bb [2]uint
}

const fullMask uint = 0b111111111

// The 8 canonical winning lines (3 rows, 3 columns, 2 diagonals) as bitboards
var winningPatterns = [8]uint{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

// Same lines as index triples, used at the meta-board level
var linePatterns = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func bbIndex(m Mark) int {
	// MarkX -> 0, MarkO -> 1
	return int(m) - 1
}

// Get the mark at given cell (0..8)
func (b *Board) At(cell int) Mark {
	bit := uint(1) << cell
	if b.bb[0]&bit != 0 {
		return MarkX
	}
	if b.bb[1]&bit != 0 {
		return MarkO
	}
	return MarkNone
}

// Bitmask of empty cells
func (b *Board) Free() uint {
	return fullMask &^ (b.bb[0] | b.bb[1])
}

func (b *Board) Empty(cell int) bool {
	return b.Free()&(1<<cell) != 0
}

func (b *Board) put(cell int, m Mark) {
	b.bb[bbIndex(m)] |= 1 << cell
}

func (b *Board) clear(cell int, m Mark) {
	b.bb[bbIndex(m)] &^= 1 << cell
}

// Check whether given mark completed any of the 8 lines
func (b *Board) wonBy(m Mark) bool {
	bb := b.bb[bbIndex(m)]
	for _, pattern := range winningPatterns {
		if bb&pattern == pattern {
			return true
		}
	}
	return false
}

// Would placing 'm' on 'cell' complete a line on this board
func (b *Board) wouldWin(cell int, m Mark) bool {
	bb := b.bb[bbIndex(m)] | (1 << cell)
	for _, pattern := range winningPatterns {
		if bb&pattern == pattern {
			return true
		}
	}
	return false
}

// Status derives the board's terminal state: a completed line wins,
// a full board without one is drawn, anything else is open
func (b *Board) Status() BoardStatus {
	if b.wonBy(MarkX) {
		return BoardXWon
	}
	if b.wonBy(MarkO) {
		return BoardOWon
	}
	if b.Free() == 0 {
		return BoardDrawn
	}
	return BoardOpen
}
