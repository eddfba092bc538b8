package vtinput

import "time"

// DefaultSequenceTimeout is the interval after which an unterminated
// string-collecting sequence (DCS/OSC/APC/PM/rename) is abandoned, the
// same value tmux uses.
const DefaultSequenceTimeout = 5 * time.Second

// sequenceTimer models the single timer armed whenever the state machine
// enters a string-collecting state. There is no
// goroutine here: the parser is driven cooperatively by its caller, so the
// caller's own event loop is expected to call Parser.Tick periodically
// (typically once per PTY read) and the parser compares against the clock
// itself. This keeps the parser's concurrency story identical to the rest
// of a pane's single-threaded processing.
type sequenceTimer struct {
	timeout  time.Duration
	deadline time.Time
	armed    bool
}

func newSequenceTimer(timeout time.Duration) *sequenceTimer {
	if timeout <= 0 {
		timeout = DefaultSequenceTimeout
	}
	return &sequenceTimer{timeout: timeout}
}

func (t *sequenceTimer) arm(now time.Time) {
	t.armed = true
	t.deadline = now.Add(t.timeout)
}

func (t *sequenceTimer) disarm() {
	t.armed = false
}

func (t *sequenceTimer) expired(now time.Time) bool {
	return t.armed && !now.Before(t.deadline)
}

// Tick lets the host report the passage of time. If a string-collecting
// sequence has been open longer than the configured timeout, it is
// abandoned exactly as if a CAN (0x18) byte had arrived: the collected
// payload is discarded and the state machine returns to ground. Tick is a
// no-op when no such sequence is in progress.
func (p *Parser) Tick(now time.Time) {
	if p.timer.expired(now) {
		p.cancelSequence()
	}
}
