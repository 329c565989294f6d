package mcts

// Snapshot of the tree statistics handed to listener callbacks
type ListenerTreeStats[T MoveLike] struct {
	BestMove   T
	Eval       float64
	Pv         []T
	MaxDepth   int
	Cycles     int
	TimeMs     int
	Cps        uint32
	Size       uint32
	StopReason StopReason
}

// Listener function callback, receives current tree statistics
type ListenerFunc[T MoveLike] func(ListenerTreeStats[T])

// StatsListener reports search progress. All callbacks run on the
// search goroutine, so no synchronization is needed inside them.
type StatsListener[T MoveLike] struct {
	// called when the maximum tree depth increases
	onDepth ListenerFunc[T]

	// called every N full cycles; evaluating the pv on every call is
	// not free, so keep N reasonably large
	onCycle ListenerFunc[T]
	nCycles int

	// called once when the search stops, StopReason is valid here
	onStop ListenerFunc[T]
}

func NewStatsListener[T MoveLike]() StatsListener[T] {
	return StatsListener[T]{nCycles: 1}
}

func (listener *StatsListener[T]) OnDepth(onDepth ListenerFunc[T]) *StatsListener[T] {
	listener.onDepth = onDepth
	return listener
}

func (listener *StatsListener[T]) OnCycle(onCycle ListenerFunc[T]) *StatsListener[T] {
	listener.onCycle = onCycle
	return listener
}

func (listener *StatsListener[T]) OnStop(onStop ListenerFunc[T]) *StatsListener[T] {
	listener.onStop = onStop
	return listener
}

// Call 'onCycle' every n cycles
func (listener *StatsListener[T]) SetCycleInterval(n int) *StatsListener[T] {
	listener.nCycles = max(n, 1)
	return listener
}
