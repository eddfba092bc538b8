package vtinput

import "time"

// PromptMark records one OSC 133 shell-integration mark: which kind it
// was and the absolute (scrollback-inclusive) row it occurred on.
type PromptMark struct {
	Kind     byte // 'A' prompt-start, 'B' prompt-end, 'C' output-start, 'D' command-finished
	Row      int
	ExitCode int // valid only for Kind == 'D'; -1 otherwise
}

// savedCursor is the Parser-owned half of DECSC/DECRC: the live cursor
// position, scroll region and dimensions belong to the ScreenWriter, so
// only the pen and the handful of mode bits DECSC actually captures are
// kept here, plus the position snapshot to hand back to ScreenWriter on
// DECRC.
type savedCursor struct {
	valid     bool
	x, y      int
	pen       CellAttrs
	origin    bool
	charsets  [4]CharsetIndex
	active    Charset
}

// Hooks is an optional diagnostic seam: a host can observe otherwise-
// silent "unknown sequence" and "unsupported mode" events without the
// parser taking a hard dependency on any logging library. Both fields may
// be left nil.
type Hooks struct {
	// Unrecognized is called for an ESC/CSI/DCS/OSC combination with no
	// matching dispatch entry. kind is e.g. "CSI", "ESC", "DCS", "OSC";
	// detail is a short human-readable description of what was seen.
	Unrecognized func(kind, detail string)
	// Discarded is called when a bounded buffer overflowed and the
	// current sequence was therefore dropped without side effect.
	Discarded func(kind string)
}

func (h Hooks) unrecognized(kind, detail string) {
	if h.Unrecognized != nil {
		h.Unrecognized(kind, detail)
	}
}

func (h Hooks) discarded(kind string) {
	if h.Discarded != nil {
		h.Discarded(kind)
	}
}

// Parser is the DEC/ANSI escape-sequence parser and command dispatcher.
// It owns no cell storage: every drawing or mode operation is issued
// against the ScreenWriter supplied at construction. A Parser is not safe
// for concurrent use; it carries no internal lock.
type Parser struct {
	screen ScreenWriter
	sixel  SixelDecoder

	response  ResponseProvider
	bell      BellProvider
	apc       APCProvider
	pm        PMProvider
	sos       SOSProvider
	clipboard ClipboardProvider
	recording RecordingProvider
	shellInt  ShellIntegrationProvider
	hooks     Hooks
	clock     func() time.Time

	state State
	col   *collector
	str   *stringBuffer
	utf8  utf8Assembler
	since *sinceGround
	timer *sequenceTimer

	pen           CellAttrs
	charsets      [4]CharsetIndex
	activeCharset Charset
	saved         savedCursor

	lastPrinted rune
	lastFlag    bool // LAST: true iff the last ground-level transition or completed sequence printed a character
	wrapPending bool // deferred-autowrap: cursor sits past the margin, pending next printable

	level    EmulationLevel
	maxLevel EmulationLevel

	oscKind byte // terminator used by the OSC currently being collected: 0x07 (BEL) or 0x1B (ST)

	stringKind byte // which family a string-collecting state is gathering: 'O' OSC, 0x58/0x5E/0x5F SOS/PM/APC, 'k' rename
	escReturn  State // state to resume in if an ESC seen in dcs_escape/consume_st turns out not to be ST

	allowSetTitle    bool
	allowRename      bool
	allowPassthrough int // 0 off, 1 on, 2 on-with-flush
	autoRename       bool
	setClipboard     string // "", "external", "off"
	defaultCursor    CursorStyle

	promptMarks      []PromptMark
	workingDirectory string

	modifyOtherKeys int // xterm CSI > 4 ; Pv m state

	dcsPending    dcsKind // which DCS sub-dispatch dcs_handler/decrqss_* is collecting for
	dcsPs         int64   // the introducer's leading parameter, for dcsRestorePresentation/dcsRestoreTerminalState
	dcsIntroducer string  // intermediates of an unrecognized-so-far introducer, for diagnostics once the payload turns out not to be a tmux passthrough
	dcsFirstByte  byte    // the introducer's dispatch byte, held back from dcs_handler collection so it can be re-prepended to the body before the "tmux;" prefix check

	hyperlinkSeq int // counter for synthesizing an id on an id-less OSC 8 open
}

// New constructs a Parser bound to screen, which must not be nil. Options
// configure everything else; unset collaborators default to no-ops so a
// caller can wire up only the pieces it cares about.
func New(screen ScreenWriter, opts ...Option) *Parser {
	if screen == nil {
		panic("vtinput: New requires a non-nil ScreenWriter")
	}
	p := &Parser{
		screen:        screen,
		response:      NoopResponse{},
		bell:          NoopBell{},
		apc:           NoopAPC{},
		pm:            NoopPM{},
		sos:           NoopSOS{},
		clipboard:     NoopClipboard{},
		recording:     NoopRecording{},
		shellInt:      NoopShellIntegration{},
		clock:         time.Now,
		col:           newCollector(),
		str:           newStringBuffer(),
		since:         newSinceGround(),
		timer:         newSequenceTimer(DefaultSequenceTimeout),
		level:         EmulationVT241,
		maxLevel:      EmulationVT241,
		allowSetTitle: true,
		allowRename:   true,
		autoRename:    true,
		setClipboard:  "external",
		defaultCursor: CursorStyleBlockBlink,
	}
	p.pen.Reset()
	p.charsets = [4]CharsetIndex{CharsetASCII, CharsetASCII, CharsetASCII, CharsetASCII}
	for _, o := range opts {
		o(p)
	}
	if p.level > p.maxLevel {
		p.level = p.maxLevel
	}
	return p
}

// Parse feeds data through the state machine, byte at a time.
func (p *Parser) Parse(data []byte) {
	p.recording.Record(data)
	for _, b := range data {
		p.feed(b)
	}
}

// Write implements io.Writer over Parse, so a Parser can sit directly at
// the consuming end of anything that copies PTY output.
func (p *Parser) Write(data []byte) (int, error) {
	p.Parse(data)
	return len(data), nil
}

// WriteString is a convenience wrapper over Write for literal test input.
func (p *Parser) WriteString(s string) {
	p.Parse([]byte(s))
}

// Reset aborts any in-progress sequence, clears the bounded buffers,
// disarms the timer and returns to ground; if clearScreen is set it also
// asks the backend for a full reset (RIS-equivalent), otherwise it is the
// narrower "abort and resync" used by input_reset(ctx, false).
func (p *Parser) Reset(clearScreen bool) {
	p.cancelSequence()
	p.pen.Reset()
	p.charsets = [4]CharsetIndex{CharsetASCII, CharsetASCII, CharsetASCII, CharsetASCII}
	p.activeCharset = G0
	p.lastFlag = false
	p.saved = savedCursor{}
	if clearScreen {
		p.screen.FullReset()
	}
}

// cancelSequence implements the CAN/SUB/timeout abort path: discard any
// collected bytes and return to ground without dispatching anything.
func (p *Parser) cancelSequence() {
	p.col.reset()
	p.str.reset()
	p.utf8.reset()
	p.enterState(StateGround)
}

func (p *Parser) now() time.Time {
	return p.clock()
}

// State reports the state machine's current node; primarily useful for
// tests asserting the feed-in-chunks invariant.
func (p *Parser) State() State {
	return p.state
}

// EmulationLevel reports the running emulation level.
func (p *Parser) EmulationLevel() EmulationLevel {
	return p.level
}
