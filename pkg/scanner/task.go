package scanner

import "time"

// DelayedTask defers an action until a deadline, polled from the
// single-threaded update loop. It replaces ad hoc timers so the simulated
// scan delay has explicit cancellation: a cancelled task never fires,
// and a fired task never fires twice.
type DelayedTask struct {
	deadline  time.Time
	action    func()
	fired     bool
	cancelled bool
}

// NewDelayedTask schedules action to run once delay has elapsed. The
// action runs on whichever goroutine calls Poll, never a timer goroutine.
func NewDelayedTask(delay time.Duration, action func()) *DelayedTask {
	return &DelayedTask{
		deadline: time.Now().Add(delay),
		action:   action,
	}
}

// Poll fires the action if the deadline has passed. It returns true the
// one time the action runs.
func (t *DelayedTask) Poll(now time.Time) bool {
	if t.fired || t.cancelled || now.Before(t.deadline) {
		return false
	}
	t.fired = true
	t.action()
	return true
}

// Cancel prevents the action from ever running. Cancelling an already
// fired task has no effect.
func (t *DelayedTask) Cancel() {
	t.cancelled = true
}

// Pending reports whether the task may still fire.
func (t *DelayedTask) Pending() bool {
	return !t.fired && !t.cancelled
}

// Remaining returns the time left until the deadline, clamped at zero.
// Used to drive progress display.
func (t *DelayedTask) Remaining(now time.Time) time.Duration {
	if d := t.deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}
