package mcts

import "math"

// Limits bound a search: backpropagation cycles, wall-clock movetime,
// and maximum tree depth. A fresh Limits is infinite; each setter
// clears the infinite flag.
type Limits struct {
	Cycles   uint32
	Movetime int // milliseconds
	Depth    int
	Infinite bool
}

const (
	DefaultCyclesLimit   uint32 = math.MaxUint32
	DefaultMovetimeLimit int    = -1
	DefaultDepthLimit    int    = math.MaxInt
)

func DefaultLimits() *Limits {
	return &Limits{
		Cycles:   DefaultCyclesLimit,
		Movetime: DefaultMovetimeLimit,
		Depth:    DefaultDepthLimit,
		Infinite: true,
	}
}

// Set the number of backpropagation cycles (iterations)
func (l *Limits) SetCycles(cycles uint32) *Limits {
	l.Cycles = cycles
	l.Infinite = false
	return l
}

// Set the maximum time to think, in milliseconds
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	l.Infinite = false
	return l
}

// Set the maximum depth of the search
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = depth
	l.Infinite = false
	return l
}

func (l *Limits) SetInfinite(infinite bool) *Limits {
	l.Infinite = infinite
	return l
}
