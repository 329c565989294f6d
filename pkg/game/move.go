package game

import "strings"

const (
	moveBoardMask = 0b11110000
	moveCellMask  = 0b00001111
)

// Move is a packed (sub-board, cell) pair: high nibble is the sub-board
// index, low nibble the cell index. Classic positions use sub-board 0.
type Move uint8

// Outside the valid range on purpose, returned on parse failures
const MoveNone Move = 0xff

// Pack a move from sub-board and cell indexes
func NewMove(board, cell int) Move {
	return Move(((board << 4) & moveBoardMask) | (cell & moveCellMask))
}

// Sub-board index of the move
func (m Move) Board() int {
	return int(m&moveBoardMask) >> 4
}

// Cell index inside the sub-board
func (m Move) Cell() int {
	return int(m & moveCellMask)
}

// String renders "b<board>c<cell>", e.g. b2c7, or "(none)" for
// an out-of-range move
func (m Move) String() string {
	b, c := m.Board(), m.Cell()
	if b >= 9 || c >= 9 {
		return "(none)"
	}
	return string([]byte{'b', '0' + byte(b), 'c', '0' + byte(c)})
}

// Parse a move written either as "b2c7" or as a bare cell digit "7"
// (classic shorthand). Returns MoveNone when the input is not a move.
func MoveFromString(s string) Move {
	s = strings.TrimSpace(s)

	if len(s) == 1 && s[0] >= '0' && s[0] <= '8' {
		return NewMove(0, int(s[0]-'0'))
	}

	if len(s) == 4 && s[0] == 'b' && s[2] == 'c' &&
		s[1] >= '0' && s[1] <= '8' && s[3] >= '0' && s[3] <= '8' {
		return NewMove(int(s[1]-'0'), int(s[3]-'0'))
	}

	return MoveNone
}

// MoveList is a fixed-capacity list of moves, large enough for any
// ultimate position (81 cells)
type MoveList struct {
	moves [81]Move
	size  uint8
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

// Reset the list, simply sets the size to 0
func (ml *MoveList) Clear() {
	ml.size = 0
}

func (ml *MoveList) Size() int {
	return int(ml.size)
}

// Get the slice of valid moves
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.size]
}

func (ml *MoveList) Append(board, cell int) {
	ml.moves[ml.size] = NewMove(board, cell)
	ml.size++
}

func (ml *MoveList) AppendMove(move Move) {
	ml.moves[ml.size] = move
	ml.size++
}

// Linear scan membership check
func (ml *MoveList) Contains(move Move) bool {
	for _, m := range ml.Slice() {
		if m == move {
			return true
		}
	}
	return false
}

func (ml *MoveList) String() string {
	if ml.size == 0 {
		return "empty"
	}

	strs := make([]string, ml.size)
	for i, m := range ml.Slice() {
		strs[i] = m.String()
	}
	return strings.Join(strs, " ")
}
