package mcts

import (
	"context"
	"strings"
	"sync/atomic"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1 // user stop or context cancellation
	StopMovetime  StopReason = 2 // time limit reached
	StopDepth     StopReason = 4 // depth limit reached
	StopCycles    StopReason = 8 // cycle limit reached
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopDepth, "Depth"},
		{StopCycles, "Cycles"},
	}

	names := make([]string, 0, len(reasons))
	for _, r := range reasons {
		if sr&r.flag != 0 {
			names = append(names, r.name)
		}
	}
	return strings.Join(names, "|")
}

// Limiter decides when a running search must stop. The stop flag and
// the context are the only parts touched from other goroutines; the
// search itself runs on a single one.
type Limiter struct {
	limits *Limits
	timer  *timer
	stop   atomic.Bool
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		timer:  newTimer(),
		ctx:    context.Background(),
	}
}

// Reset the limiter's flags, called on search setup
func (l *Limiter) Reset() {
	l.timer.Movetime(l.limits.Movetime)
	l.timer.Reset()
	l.stop.Store(false)
	l.reason = StopNone
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

// Attach a context, enabling cancellation through it
func (l *Limiter) SetContext(ctx context.Context) {
	l.ctx = ctx
}

// Set the stop signal, safe to call from another goroutine
func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

// Get the stop signal, folding in context cancellation
func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

// Elapsed milliseconds since the search started
func (l *Limiter) Elapsed() uint32 {
	return uint32(l.timer.Deltatime())
}

// Whether the search may run another cycle
func (l *Limiter) Ok(depth int, cycles uint32) bool {
	if l.Stop() {
		return false
	}
	if l.limits.Infinite {
		return true
	}
	return !l.timer.IsEnd() &&
		l.limits.Depth > depth &&
		l.limits.Cycles > cycles
}

// Evaluate and store the stop reason, called once after the search loop
func (l *Limiter) EvaluateStopReason(depth int, cycles uint32) {
	reason := StopNone

	if l.stop.Load() {
		reason |= StopInterrupt
	}
	if !l.limits.Infinite {
		if l.timer.IsSet() && l.timer.IsEnd() {
			reason |= StopMovetime
		}
		if l.limits.Depth <= depth {
			reason |= StopDepth
		}
		if l.limits.Cycles <= cycles {
			reason |= StopCycles
		}
	}

	l.reason = reason
}

// Get the reason why the search was stopped, valid after search ends
func (l *Limiter) StopReason() StopReason {
	return l.reason
}
