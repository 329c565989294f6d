package game

// Shared type defines for both game variants

type Mark uint8
type BoardStatus uint8
type Outcome uint8
type Variant uint8

const (
	MarkNone Mark = iota
	MarkX
	MarkO
)

// Per-board (and, for ultimate, per-meta-cell) status
const (
	BoardOpen BoardStatus = iota
	BoardXWon
	BoardOWon
	BoardDrawn
)

const (
	InProgress Outcome = iota
	XWon
	OWon
	Draw
)

const (
	VariantClassic Variant = iota
	VariantUltimate
)

// Sentinel for the ultimate forced-board constraint, meaning
// "play on any open sub-board"
const ForcedAny int8 = -1

// Get the opposite mark, MarkNone maps to itself
func (m Mark) Other() Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	}
	return MarkNone
}

func (m Mark) String() string {
	switch m {
	case MarkX:
		return "x"
	case MarkO:
		return "o"
	}
	return "."
}

// Create a mark from a rune, anything other than 'x'/'o' is MarkNone
func MarkFromRune(r rune) Mark {
	switch r {
	case 'x':
		return MarkX
	case 'o':
		return MarkO
	}
	return MarkNone
}

// Status of a board won by given mark, BoardOpen for MarkNone
func wonStatus(m Mark) BoardStatus {
	switch m {
	case MarkX:
		return BoardXWon
	case MarkO:
		return BoardOWon
	}
	return BoardOpen
}

func (s BoardStatus) String() string {
	switch s {
	case BoardXWon:
		return "x"
	case BoardOWon:
		return "o"
	case BoardDrawn:
		return "="
	}
	return "."
}

// Terminal outcome of a single board, mapping BoardDrawn to Draw
func (s BoardStatus) outcome() Outcome {
	switch s {
	case BoardXWon:
		return XWon
	case BoardOWon:
		return OWon
	case BoardDrawn:
		return Draw
	}
	return InProgress
}

// Winner returns the winning mark, if the outcome is a win
func (o Outcome) Winner() (Mark, bool) {
	switch o {
	case XWon:
		return MarkX, true
	case OWon:
		return MarkO, true
	}
	return MarkNone, false
}

func (o Outcome) Terminal() bool {
	return o != InProgress
}

func (o Outcome) String() string {
	switch o {
	case XWon:
		return "x won"
	case OWon:
		return "o won"
	case Draw:
		return "draw"
	}
	return "in progress"
}

func (v Variant) String() string {
	if v == VariantUltimate {
		return "ultimate"
	}
	return "classic"
}

// Parse a variant name, accepts "classic" and "ultimate"
func VariantFromString(s string) (Variant, bool) {
	switch s {
	case "classic":
		return VariantClassic, true
	case "ultimate":
		return VariantUltimate, true
	}
	return VariantClassic, false
}
