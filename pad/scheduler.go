package pad

import "time"

// DefaultBlinkPeriod is the caret blink half-period.
const DefaultBlinkPeriod = 600 * time.Millisecond

// Scheduler runs periodic tasks on the UI goroutine.
//
// Every starts calling fn every period until the returned cancel function is
// called. After cancel returns, fn must not run again.
type Scheduler interface {
	Every(period time.Duration, fn func()) (cancel func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(period time.Duration, fn func()) func()

// Every implements Scheduler.
func (f SchedulerFunc) Every(period time.Duration, fn func()) func() {
	return f(period, fn)
}

// steady never fires; a caret scheduled on it stays on.
type steady struct{}

func (steady) Every(time.Duration, func()) func() { return func() {} }
