package vtinput

import "time"

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithResponse sets the sink replies are written to. Without this option
// replies are silently discarded (NoopResponse).
func WithResponse(r ResponseProvider) Option {
	return func(p *Parser) {
		if r != nil {
			p.response = r
		}
	}
}

// WithBell attaches a bell provider.
func WithBell(b BellProvider) Option {
	return func(p *Parser) {
		if b != nil {
			p.bell = b
		}
	}
}

// WithAPC attaches an Application Program Command provider.
func WithAPC(a APCProvider) Option {
	return func(p *Parser) {
		if a != nil {
			p.apc = a
		}
	}
}

// WithPM attaches a Privacy Message provider.
func WithPM(pm PMProvider) Option {
	return func(p *Parser) {
		if pm != nil {
			p.pm = pm
		}
	}
}

// WithSOS attaches a Start-of-String provider.
func WithSOS(s SOSProvider) Option {
	return func(p *Parser) {
		if s != nil {
			p.sos = s
		}
	}
}

// WithClipboard attaches the OSC 52 clipboard backend.
func WithClipboard(c ClipboardProvider) Option {
	return func(p *Parser) {
		if c != nil {
			p.clipboard = c
		}
	}
}

// WithRecording attaches a raw-byte recorder.
func WithRecording(r RecordingProvider) Option {
	return func(p *Parser) {
		if r != nil {
			p.recording = r
		}
	}
}

// WithShellIntegration attaches an OSC 133 mark observer.
func WithShellIntegration(s ShellIntegrationProvider) Option {
	return func(p *Parser) {
		if s != nil {
			p.shellInt = s
		}
	}
}

// WithSixelDecoder attaches the external Sixel decoder used by the DCS
// Sixel sub-dispatch. Without one, Sixel DCS sequences are accepted and
// consumed but produce no image.
func WithSixelDecoder(d SixelDecoder) Option {
	return func(p *Parser) {
		p.sixel = d
	}
}

// WithHooks attaches the optional diagnostic seam.
func WithHooks(h Hooks) Option {
	return func(p *Parser) {
		p.hooks = h
	}
}

// WithClock overrides the wall clock used to arm/check the sequence
// termination timer; intended for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.clock = now
		}
	}
}

// WithSequenceTimeout overrides the default 5-second unterminated-sequence
// timeout.
func WithSequenceTimeout(d time.Duration) Option {
	return func(p *Parser) {
		p.timer = newSequenceTimer(d)
	}
}

// WithEmulationLevel sets the initial and maximum emulation level; DECSCL
// can move the running level anywhere at or below max.
func WithEmulationLevel(level, max EmulationLevel) Option {
	return func(p *Parser) {
		p.maxLevel = max
		p.level = level
		if p.level > p.maxLevel {
			p.level = p.maxLevel
		}
	}
}

// WithAllowSetTitle gates OSC 0/2 title changes (default true).
func WithAllowSetTitle(allow bool) Option {
	return func(p *Parser) { p.allowSetTitle = allow }
}

// WithAllowRename gates the rename_string sequence, ESC k ... ST (default
// true).
func WithAllowRename(allow bool) Option {
	return func(p *Parser) { p.allowRename = allow }
}

// WithAllowPassthrough gates the tmux DCS passthrough extension: 0 off,
// 1 on, 2 on with an immediate Flush after each payload.
func WithAllowPassthrough(mode int) Option {
	return func(p *Parser) { p.allowPassthrough = mode }
}

// WithClipboardPolicy sets the OSC 52 set-clipboard policy: "external"
// (default) allows both read and write, "off" disables OSC 52 entirely.
func WithClipboardPolicy(policy string) Option {
	return func(p *Parser) { p.setClipboard = policy }
}

// WithDefaultCursorStyle sets the style DECSTR/RIS resets the cursor to.
func WithDefaultCursorStyle(s CursorStyle) Option {
	return func(p *Parser) { p.defaultCursor = s }
}
