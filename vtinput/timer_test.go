package vtinput

import (
	"testing"
	"time"
)

func TestSequenceTimer_ArmDisarmExpire(t *testing.T) {
	timer := newSequenceTimer(10 * time.Second)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if timer.expired(base) {
		t.Error("unarmed timer should never be expired")
	}

	timer.arm(base)
	if timer.expired(base.Add(5 * time.Second)) {
		t.Error("timer should not be expired before the deadline")
	}
	if !timer.expired(base.Add(10 * time.Second)) {
		t.Error("timer should be expired exactly at the deadline")
	}

	timer.disarm()
	if timer.expired(base.Add(100 * time.Second)) {
		t.Error("disarmed timer should never be expired")
	}
}

func TestSequenceTimer_DefaultsWhenNonPositive(t *testing.T) {
	timer := newSequenceTimer(0)
	if timer.timeout != DefaultSequenceTimeout {
		t.Errorf("timeout = %v, want %v", timer.timeout, DefaultSequenceTimeout)
	}
}

func TestParserTick_AbandonsStaleOSC(t *testing.T) {
	scr := newTestScreen(40, 5)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := base
	p := New(scr, WithSequenceTimeout(2*time.Second), WithClock(func() time.Time { return tick }))

	p.WriteString("\x1b]0;unterminated title")
	p.Tick(base.Add(1 * time.Second))
	if p.state == StateGround {
		t.Fatal("OSC should still be open before timeout")
	}

	p.Tick(base.Add(3 * time.Second))
	if p.state != StateGround {
		t.Errorf("state = %v, want StateGround after timeout", p.state)
	}
	if scr.title != "" {
		t.Errorf("abandoned OSC should not have set the title, got %q", scr.title)
	}
}
